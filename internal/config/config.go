package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Env      string `env:"APP_ENV" env-default:"local"`
	Storage  string `env:"STORAGE_DRIVER" env-default:"postgres"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
	Auth     AuthConfig
	Realtime RealtimeConfig
	Redis    RedisConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR" env-default:"0.0.0.0:4000"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"30s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
}

type PostgresConfig struct {
	URL            string `env:"DATABASE_URL"`
	Host           string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           string `env:"POSTGRES_PORT" env-default:"5432"`
	User           string `env:"POSTGRES_USER" env-default:"postgres"`
	Password       string `env:"POSTGRES_PASSWORD" env-default:"postgres"`
	DB             string `env:"POSTGRES_DB" env-default:"livepoll"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" env-default:"true"`
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" env-default:"1h"`
}

type RealtimeConfig struct {
	AllowedOrigins []string `env:"WS_ALLOWED_ORIGINS"`
}

type RedisConfig struct {
	URL     string `env:"REDIS_URL"`
	Channel string `env:"REDIS_CHANNEL" env-default:"livepoll:poll-updates"`
}

// Load reads an optional .env file and then the process environment.
// Variables already set in the environment win over the file.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !isNotExist(err) {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

// ConnString returns DATABASE_URL when set, otherwise a URL built from the
// POSTGRES_* variables.
func (p PostgresConfig) ConnString() string {
	if p.URL != "" {
		return p.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     p.Host + ":" + p.Port,
		Path:     "/" + p.DB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
