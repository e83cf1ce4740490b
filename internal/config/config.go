package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ignite/newsletter/internal/domain"
	"github.com/ignite/newsletter/internal/pkg/secret"
)

// Config holds all configuration for the application
type Config struct {
	Application ApplicationConfig `yaml:"application"`
	EmailClient EmailClientConfig `yaml:"email_client"`
	Log         LogConfig         `yaml:"log"`
}

// ApplicationConfig holds HTTP server configuration
type ApplicationConfig struct {
	Host           string   `yaml:"host"`
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// Address returns host:port for http.Server.
func (c ApplicationConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// EmailClientConfig holds the email provider settings
type EmailClientConfig struct {
	BaseURL             string        `yaml:"base_url"`
	SenderEmail         string        `yaml:"sender_email"`
	AuthorizationToken  secret.String `yaml:"authorization_token"`
	TimeoutMilliseconds int           `yaml:"timeout_milliseconds"`
}

// Sender validates the configured sender address.
func (c EmailClientConfig) Sender() (domain.SubscriberEmail, error) {
	sender, err := domain.ParseSubscriberEmail(c.SenderEmail)
	if err != nil {
		return domain.SubscriberEmail{}, fmt.Errorf("email_client.sender_email: %w", err)
	}
	return sender, nil
}

// Timeout returns the configured timeout as a duration
func (c EmailClientConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMilliseconds) * time.Millisecond
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `yaml:"level"`
	// RedactPII defaults to true when omitted.
	RedactPII *bool `yaml:"redact_pii"`
}

// ShouldRedactPII reports whether email addresses are masked in logs.
func (c LogConfig) ShouldRedactPII() bool {
	return c.RedactPII == nil || *c.RedactPII
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Set defaults
	if cfg.Application.Host == "" {
		cfg.Application.Host = "127.0.0.1"
	}
	if cfg.Application.Port == 0 {
		cfg.Application.Port = 8000
	}
	if len(cfg.Application.AllowedOrigins) == 0 {
		cfg.Application.AllowedOrigins = []string{"*"}
	}
	if cfg.EmailClient.TimeoutMilliseconds == 0 {
		cfg.EmailClient.TimeoutMilliseconds = 10000
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("APP_HOST"); v != "" {
		cfg.Application.Host = v
	}
	if v := os.Getenv("APP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("APP_PORT: %w", err)
		}
		cfg.Application.Port = port
	}
	if v := os.Getenv("EMAIL_CLIENT_BASE_URL"); v != "" {
		cfg.EmailClient.BaseURL = v
	}
	if v := os.Getenv("EMAIL_CLIENT_SENDER_EMAIL"); v != "" {
		cfg.EmailClient.SenderEmail = v
	}
	if v := os.Getenv("EMAIL_CLIENT_AUTHORIZATION_TOKEN"); v != "" {
		cfg.EmailClient.AuthorizationToken = secret.New(v)
	}
	if v := os.Getenv("EMAIL_CLIENT_TIMEOUT_MILLISECONDS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("EMAIL_CLIENT_TIMEOUT_MILLISECONDS: %w", err)
		}
		cfg.EmailClient.TimeoutMilliseconds = ms
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}

	return cfg, nil
}
