package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Stats    StatsConfig    `yaml:"stats"`
}

type ServerConfig struct {
	Port            int      `yaml:"port"`
	BasePath        string   `yaml:"base_path"`
	Env             string   `yaml:"env"`
	LogLevel        string   `yaml:"log_level"`
	ReadTimeout     Duration `yaml:"read_timeout"`
	WriteTimeout    Duration `yaml:"write_timeout"`
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL             string   `yaml:"url"`
	MaxOpenConns    int      `yaml:"max_open_conns"`
	MaxIdleConns    int      `yaml:"max_idle_conns"`
	ConnMaxLifetime Duration `yaml:"conn_max_lifetime"`
}

type AuthConfig struct {
	SecretKey   string   `yaml:"secret_key"`
	TokenExpiry Duration `yaml:"token_expiry"`
}

type StatsConfig struct {
	// Schedule is a cron expression for the record count refresh job
	Schedule string `yaml:"schedule"`
}

// Duration wraps time.Duration so yaml values like "15s" parse
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func Load(path string) (*Config, error) {
	// .env is optional, mainly for local development
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:            8080,
			BasePath:        "/api",
			Env:             "dev",
			LogLevel:        "debug",
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
		},
		Database: DatabaseConfig{
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: Duration(5 * time.Minute),
		},
		Auth: AuthConfig{
			TokenExpiry: Duration(24 * time.Hour),
		},
		Stats: StatsConfig{
			Schedule: "@every 1m",
		},
	}

	// Load from yaml file if exists
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	// Override with environment variables
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if basePath := os.Getenv("SERVER_BASE_PATH"); basePath != "" {
		cfg.Server.BasePath = basePath
	}
	if env := os.Getenv("ENV"); env != "" {
		cfg.Server.Env = env
	}
	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		cfg.Server.LogLevel = logLevel
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if secretKey := os.Getenv("SECRET_KEY"); secretKey != "" {
		cfg.Auth.SecretKey = secretKey
	}
	if expiry := os.Getenv("TOKEN_EXPIRY"); expiry != "" {
		if parsed, err := time.ParseDuration(expiry); err == nil {
			cfg.Auth.TokenExpiry = Duration(parsed)
		}
	}
	if schedule := os.Getenv("STATS_SCHEDULE"); schedule != "" {
		cfg.Stats.Schedule = schedule
	}

	return cfg, nil
}
