package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	LogLevel int     `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP    `envPrefix:"HTTP_"`
	GRPC     GRPC    `envPrefix:"GRPC_"`
	Twitter  Twitter `envPrefix:"TWITTER_"`
	Wallet   Wallet
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"5000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	AllowedOrigin      string `env:"ALLOWED_ORIGIN" envDefault:"http://localhost:5173"`
}

// GRPC contains gRPC server parameters.
type GRPC struct {
	Enabled            bool   `env:"ENABLED" envDefault:"false"`
	Port               string `env:"PORT" envDefault:"50051"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Twitter contains identity API parameters.
type Twitter struct {
	BearerToken string        `env:"BEARER_TOKEN,required,notEmpty"`
	BaseURL     string        `env:"BASE_URL" envDefault:"https://api.twitter.com"`
	Timeout     time.Duration `env:"TIMEOUT" envDefault:"5s"`
}

// Wallet contains address derivation parameters.
type Wallet struct {
	Salt string `env:"SALT,required,notEmpty"`
}

// NewConfig loads configuration from environment variables.
// It fails when the identity API token or the derivation salt is missing.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Twitter.Timeout <= 0 {
		return nil, fmt.Errorf("failed to parse config: TWITTER_TIMEOUT must be positive, got %s", cfg.Twitter.Timeout)
	}

	return &cfg, nil
}
