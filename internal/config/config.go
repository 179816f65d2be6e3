package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds process configuration. Values come from defaults, then an
// optional YAML file, then the environment.
type Config struct {
	Port               string        `yaml:"port"`
	DatabaseURL        string        `yaml:"database_url"`
	DatabaseSSL        string        `yaml:"database_ssl"`
	DBQueryTimeout     time.Duration `yaml:"db_query_timeout"`
	AutoMigrate        bool          `yaml:"auto_migrate"`
	CovidAPIURL        string        `yaml:"covid_api_url"`
	UpstreamTimeout    time.Duration `yaml:"upstream_timeout"`
	UpstreamRPS        float64       `yaml:"upstream_rps"`
	UserAgent          string        `yaml:"user_agent"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	MaxBodyBytes       int64         `yaml:"max_body_bytes"`
	LogLevel           string        `yaml:"log_level"`
	LogFormat          string        `yaml:"log_format"`
}

func (c *Config) applyDefaults() {
	if c.Port == "" {
		c.Port = "3000"
	}
	if c.DatabaseSSL == "" {
		c.DatabaseSSL = "require"
	}
	if c.DBQueryTimeout == 0 {
		c.DBQueryTimeout = 5 * time.Second
	}
	if c.CovidAPIURL == "" {
		c.CovidAPIURL = "https://api.covid19api.com"
	}
	if c.UpstreamTimeout == 0 {
		c.UpstreamTimeout = 15 * time.Second
	}
	if c.UserAgent == "" {
		c.UserAgent = "covidjournal/1.0"
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"*"}
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = 1 << 20
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "json"
	}
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// LoadEnvFiles reads .env and .env.local. Variables already present in the
// process environment are never overridden.
func LoadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// Load builds a Config. An empty path or a missing file skips the YAML layer.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open config %q: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %q: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.DatabaseURL, "DATABASE_URL")
	setString(&cfg.DatabaseSSL, "DATABASE_SSL")
	setString(&cfg.CovidAPIURL, "COVID_API_URL")
	setString(&cfg.UserAgent, "USER_AGENT")
	setString(&cfg.LogLevel, "LOG_LEVEL")
	setString(&cfg.LogFormat, "LOG_FORMAT")

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
	if err := setDuration(&cfg.DBQueryTimeout, "DB_QUERY_TIMEOUT"); err != nil {
		return err
	}
	if err := setDuration(&cfg.UpstreamTimeout, "UPSTREAM_TIMEOUT"); err != nil {
		return err
	}
	if v := os.Getenv("UPSTREAM_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("UPSTREAM_RPS: %w", err)
		}
		cfg.UpstreamRPS = rps
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}
	if v := os.Getenv("AUTO_MIGRATE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("AUTO_MIGRATE: %w", err)
		}
		cfg.AutoMigrate = b
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// RedactDSN hides the credentials part of a connection string.
func RedactDSN(dsn string) string {
	const marker = "://"
	start := strings.Index(dsn, marker)
	if start < 0 {
		return dsn
	}
	start += len(marker)
	end := strings.Index(dsn[start:], "@")
	if end < 0 {
		return dsn
	}
	return dsn[:start] + "***" + dsn[start+end:]
}
