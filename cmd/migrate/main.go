package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog/log"

	"covidjournal/internal/config"
	"covidjournal/internal/db"
	"covidjournal/internal/platform/logger"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, status, create")
		name    = flag.String("name", "", "Name for 'create' command")
	)
	flag.Parse()

	config.LoadEnvFiles()
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	logger.Setup(cfg.LogLevel, "console")

	if *command == "create" {
		if *name == "" {
			log.Fatal().Msg("name is required for 'create' command")
		}
		goose.SetBaseFS(nil)
		if err := goose.Create(nil, migrationsDir(), *name, "sql"); err != nil {
			log.Fatal().Err(err).Msg("create migration")
		}
		fmt.Printf("Migration created: %s\n", *name)
		return
	}

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("missing required environment variable: DATABASE_URL")
	}

	ctx := context.Background()
	pool, err := db.Open(ctx, cfg.DatabaseURL, cfg.DatabaseSSL)
	if err != nil {
		log.Fatal().Err(err).Str("dsn", config.RedactDSN(cfg.DatabaseURL)).Msg("cannot open database")
	}
	defer pool.Close()

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(db.Migrations())
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal().Err(err).Msg("set goose dialect")
	}

	switch *command {
	case "up":
		if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("run migrations")
		}
		fmt.Println("Migrations applied successfully")
	case "down":
		if err := goose.DownContext(ctx, sqlDB, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("roll back migration")
		}
		fmt.Println("Migrations rolled back successfully")
	case "status":
		if err := goose.StatusContext(ctx, sqlDB, "migrations"); err != nil {
			log.Fatal().Err(err).Msg("migration status")
		}
	default:
		log.Fatal().Msgf("unknown command: %s. Use: up, down, status, create", *command)
	}
}
