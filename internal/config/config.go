package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration. It is built once
// at process start and never mutated afterwards.
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Database struct {
		URI            string `yaml:"uri" env:"MONGO_URI"`
		Name           string `yaml:"name" env:"DB_NAME"`
		ConnectTimeout string `yaml:"connect_timeout" env:"DB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_EXPIRATION"`
	} `yaml:"jwt"`

	Auth struct {
		Username string `yaml:"username" env:"AUTH_USERNAME"`
		Password string `yaml:"password" env:"AUTH_PASSWORD"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration. The JWT secret and
// credential defaults are deliberate fallbacks for local runs.
func setDefaults(config *Config) {
	config.Server.Port = "3000"
	config.Server.Mode = "development"

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "studentms"
	config.Database.ConnectTimeout = "10s"

	config.JWT.Secret = "secretkey"
	config.JWT.TokenExpiration = "24h"

	config.Auth.Username = "admin"
	config.Auth.Password = "password123"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Auth.Username == "" || config.Auth.Password == "" {
		return fmt.Errorf("auth credentials are required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid database connect timeout format: %w", err)
	}

	return nil
}
