package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TWITTER_BEARER_TOKEN", "token")
	t.Setenv("SALT", "s3cr3t")
}

func TestNewConfig_DefaultValues(t *testing.T) {
	setRequired(t)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "5000", cfg.HTTP.Port)
	assert.Equal(t, false, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.HTTP.CertFileName)
	assert.Equal(t, "key.pem", cfg.HTTP.PrivateKeyFileName)
	assert.Equal(t, "http://localhost:5173", cfg.HTTP.AllowedOrigin)
	assert.Equal(t, false, cfg.GRPC.Enabled)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, "token", cfg.Twitter.BearerToken)
	assert.Equal(t, "https://api.twitter.com", cfg.Twitter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Twitter.Timeout)
	assert.Equal(t, "s3cr3t", cfg.Wallet.Salt)
}

func TestNewConfig_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		wantErr string
	}{
		{
			name:    "missing salt",
			envVars: map[string]string{"TWITTER_BEARER_TOKEN": "token"},
			wantErr: "SALT",
		},
		{
			name:    "empty salt",
			envVars: map[string]string{"TWITTER_BEARER_TOKEN": "token", "SALT": ""},
			wantErr: "SALT",
		},
		{
			name:    "missing token",
			envVars: map[string]string{"SALT": "s3cr3t"},
			wantErr: "TWITTER_BEARER_TOKEN",
		},
		{
			name:    "non-positive timeout",
			envVars: map[string]string{"TWITTER_BEARER_TOKEN": "token", "SALT": "s3cr3t", "TWITTER_TIMEOUT": "0s"},
			wantErr: "TWITTER_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                  "8080",
				"HTTP_ENABLE_HTTPS":          "true",
				"HTTP_CERT_FILE_NAME":        "custom.pem",
				"HTTP_PRIVATE_KEY_FILE_NAME": "custom-key.pem",
				"HTTP_ALLOWED_ORIGIN":        "https://onboard.example.com",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "8080", cfg.HTTP.Port)
				assert.Equal(t, true, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, "custom.pem", cfg.HTTP.CertFileName)
				assert.Equal(t, "custom-key.pem", cfg.HTTP.PrivateKeyFileName)
				assert.Equal(t, "https://onboard.example.com", cfg.HTTP.AllowedOrigin)
			},
		},
		{
			name: "grpc config override",
			envVars: map[string]string{
				"GRPC_ENABLED":      "true",
				"GRPC_PORT":         "9090",
				"GRPC_ENABLE_HTTPS": "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.GRPC.Enabled)
				assert.Equal(t, "9090", cfg.GRPC.Port)
				assert.Equal(t, true, cfg.GRPC.EnableHTTPS)
			},
		},
		{
			name: "twitter config override",
			envVars: map[string]string{
				"TWITTER_BASE_URL": "http://localhost:8081",
				"TWITTER_TIMEOUT":  "250ms",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "http://localhost:8081", cfg.Twitter.BaseURL)
				assert.Equal(t, 250*time.Millisecond, cfg.Twitter.Timeout)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
