package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"covidjournal/internal/config"
	"covidjournal/internal/covid"
	"covidjournal/internal/db"
	"covidjournal/internal/platform/covid19api"
	"covidjournal/internal/platform/logger"
	"covidjournal/internal/record"
	"covidjournal/internal/server"
	"covidjournal/internal/view"
	"covidjournal/web"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("missing required environment variable: DATABASE_URL")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabaseSSL)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", config.RedactDSN(cfg.DatabaseURL)).Msg("cannot open database")
	}
	defer pool.Close()
	log.Info().Msg("database connection OK")

	if cfg.AutoMigrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
	}

	engine, err := view.New(web.Templates())
	if err != nil {
		log.Fatal().Err(err).Msg("parse templates")
	}

	client := covid19api.NewClient(covid19api.Options{
		BaseURL:   cfg.CovidAPIURL,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.UpstreamTimeout,
		RPS:       cfg.UpstreamRPS,
	})
	recordRepo := record.NewPostgresRepo(pool, cfg.DBQueryTimeout)

	router := server.NewRouter(server.Deps{
		Covid:              covid.NewHTTPHandler(covid.NewService(client), engine),
		Records:            record.NewHTTPHandler(record.NewService(recordRepo), engine),
		Renderer:           engine,
		Static:             web.Static(),
		DB:                 pool,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		MaxBodyBytes:       cfg.MaxBodyBytes,
	})

	if err := server.New(cfg.Addr(), router).Run(ctx); err != nil {
		log.Error().Err(err).Msg("server error")
		os.Exit(1)
	}
}
