package app

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/catalog-backend/internal/db"
	"github.com/yungbote/catalog-backend/internal/observability"
	"github.com/yungbote/catalog-backend/internal/pkg/envutil"
	"github.com/yungbote/catalog-backend/internal/realtime/bus"
)

type Config struct {
	Port    int    `yaml:"port"`
	LogMode string `yaml:"log_mode"`

	Postgres db.PostgresConfig        `yaml:"postgres"`
	Redis    bus.RedisConfig          `yaml:"redis"`
	Otel     observability.OtelConfig `yaml:"otel"`

	MetricsEnabled  bool          `yaml:"metrics_enabled"`
	CORSOrigins     []string      `yaml:"cors_allow_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

func defaultConfig() Config {
	return Config{
		Port:    8080,
		LogMode: "development",
		Postgres: db.PostgresConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "postgres",
			Password:     "postgres",
			Name:         "catalog",
			SSLMode:      "disable",
			MaxOpenConns: 20,
			MaxIdleConns: 5,
		},
		Redis:           bus.RedisConfig{Channel: bus.DefaultChannel},
		Otel:            observability.OtelConfig{ServiceName: "catalog-backend", SampleRatio: 0.1},
		MetricsEnabled:  true,
		ShutdownTimeout: 15 * time.Second,
	}
}

// LoadConfig starts from defaults, applies the YAML file named by CONFIG_FILE
// (if any) and then environment overrides.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = envutil.Int("PORT", cfg.Port)
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)

	cfg.Postgres.Host = envutil.String("POSTGRES_HOST", cfg.Postgres.Host)
	cfg.Postgres.Port = envutil.Int("POSTGRES_PORT", cfg.Postgres.Port)
	cfg.Postgres.User = envutil.String("POSTGRES_USER", cfg.Postgres.User)
	cfg.Postgres.Password = envutil.String("POSTGRES_PASSWORD", cfg.Postgres.Password)
	cfg.Postgres.Name = envutil.String("POSTGRES_NAME", cfg.Postgres.Name)
	cfg.Postgres.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.Postgres.SSLMode)

	cfg.Redis.Addr = envutil.String("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Channel = envutil.String("REDIS_CHANNEL", cfg.Redis.Channel)

	cfg.MetricsEnabled = envutil.Bool("METRICS_ENABLED", cfg.MetricsEnabled)
	cfg.Otel.Enabled = envutil.Bool("OTEL_ENABLED", cfg.Otel.Enabled)
	cfg.Otel.Endpoint = envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", cfg.Otel.Endpoint)
	cfg.Otel.SampleRatio = envutil.Float("OTEL_SAMPLE_RATIO", cfg.Otel.SampleRatio)
	cfg.Otel.Environment = envutil.String("APP_ENV", cfg.Otel.Environment)

	cfg.CORSOrigins = envutil.List("CORS_ALLOW_ORIGINS", cfg.CORSOrigins)
	if secs := envutil.Int("SHUTDOWN_TIMEOUT_SECONDS", 0); secs > 0 {
		cfg.ShutdownTimeout = time.Duration(secs) * time.Second
	}
}

func (c Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if strings.TrimSpace(c.Postgres.Host) == "" || strings.TrimSpace(c.Postgres.Name) == "" {
		return fmt.Errorf("postgres host and name are required")
	}
	return nil
}

func (c Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
