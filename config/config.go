package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Queue       QueueConfig
	Twilio      TwilioConfig
	SMTP        SMTPConfig
	Sweeper     SweeperConfig
	SecretKey   string
	Environment string
	APIEndpoint string
	FrontendURL string
	LogLevel    string
	Version     string

	// First-boot bootstrap: when DefaultOrgName is set and the orgs
	// table is empty, a single org is created so single-tenant installs
	// work without a setup step.
	DefaultOrgName  string
	DefaultOrgEmail string
}

type ServerConfig struct {
	Port int
	Host string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// QueueConfig selects and tunes the inbound job queue.
// Type is one of "postgres", "memory" or "auto" (try postgres first,
// fall back to memory at startup).
type QueueConfig struct {
	Type         string
	Concurrency  int
	PollInterval time.Duration
	MaxAttempts  int
}

type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
	DefaultOrgID string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SweeperConfig struct {
	Enabled  bool
	Interval time.Duration
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "converso")
	v.SetDefault("DB_SSLMODE", "require")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	// Queue defaults
	v.SetDefault("QUEUE_TYPE", "auto")
	v.SetDefault("QUEUE_CONCURRENCY", 15)
	v.SetDefault("QUEUE_POLL_INTERVAL", "1s")
	v.SetDefault("QUEUE_MAX_ATTEMPTS", 3)

	// SMTP defaults
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "Converso")
	v.SetDefault("SMTP_FROM_EMAIL", "noreply@converso.app")

	// Sweeper defaults
	v.SetDefault("SWEEPER_ENABLED", true)
	v.SetDefault("SWEEPER_INTERVAL", "15m")

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}

		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	secretKey := v.GetString("SECRET_KEY")
	if secretKey == "" {
		return nil, fmt.Errorf("SECRET_KEY is required")
	}

	queueType := v.GetString("QUEUE_TYPE")
	switch queueType {
	case "postgres", "memory", "auto":
	default:
		return nil, fmt.Errorf("invalid QUEUE_TYPE %q: must be postgres, memory or auto", queueType)
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			DBName:   v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Queue: QueueConfig{
			Type:         queueType,
			Concurrency:  v.GetInt("QUEUE_CONCURRENCY"),
			PollInterval: v.GetDuration("QUEUE_POLL_INTERVAL"),
			MaxAttempts:  v.GetInt("QUEUE_MAX_ATTEMPTS"),
		},
		Twilio: TwilioConfig{
			AccountSID:   v.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:    v.GetString("TWILIO_AUTH_TOKEN"),
			WhatsAppFrom: v.GetString("TWILIO_WHATSAPP_FROM"),
			DefaultOrgID: v.GetString("TWILIO_DEFAULT_ORG_ID"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Sweeper: SweeperConfig{
			Enabled:  v.GetBool("SWEEPER_ENABLED"),
			Interval: v.GetDuration("SWEEPER_INTERVAL"),
		},
		SecretKey:       secretKey,
		DefaultOrgName:  v.GetString("DEFAULT_ORG_NAME"),
		DefaultOrgEmail: v.GetString("DEFAULT_ORG_EMAIL"),
		Environment:     v.GetString("ENVIRONMENT"),
		APIEndpoint:     v.GetString("API_ENDPOINT"),
		FrontendURL:     v.GetString("FRONTEND_URL"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		Version:         v.GetString("VERSION"),
	}

	if config.FrontendURL == "" {
		config.FrontendURL = config.APIEndpoint
	}

	return config, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
