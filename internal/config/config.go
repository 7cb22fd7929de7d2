// Package config loads the server configuration from the process environment
// and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the complete server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port string `env:"PORT" envDefault:"5000" validate:"required,numeric"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`

	// CORSAllowOrigins is either "*" or a comma separated list of origins.
	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*" validate:"required"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`

	Mongo  Mongo
	Auth   Auth
	Images Images
}

// Mongo holds the document database connection settings.
type Mongo struct {
	URI string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017" validate:"required"`

	// User and Password are applied as client credentials when User is set.
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`

	Database       string        `env:"DB_NAME" envDefault:"aircncDB" validate:"required"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// Auth holds the token signing settings.
type Auth struct {
	TokenSecret string        `env:"ACCESS_TOKEN_SECRET" validate:"required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"3h" validate:"gt=0"`
}

// Images holds the object storage settings for listing images.
// Image uploads are disabled when Endpoint is empty.
type Images struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY" validate:"required_with=Endpoint"`
	SecretKey string `env:"MINIO_SECRET_KEY" validate:"required_with=Endpoint"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"room-images" validate:"required"`
	UseSSL    bool   `env:"MINIO_USE_SSL"`
}

// Enabled reports whether an image store is configured.
func (i Images) Enabled() bool {
	return i.Endpoint != ""
}

// Load reads the given .env files (".env" when none are given) into the
// environment, then parses and validates the configuration. Variables that are
// already set in the environment take precedence over the files, and a missing
// file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading env file: %w", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
