package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Bootstrap configuration for the seeded admin account
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`

	// Monitoring configuration
	Monitoring MonitoringConfig `mapstructure:"monitoring"`

	// Logging configuration
	LogLevel string `mapstructure:"log_level"`
}

// BootstrapConfig holds the credentials seeded into the account
// directory at startup. The directory is never without an admin
// account, so both fields are required.
type BootstrapConfig struct {
	AdminUsername string `mapstructure:"admin_username"`
	AdminPassword string `mapstructure:"admin_password"`
}

// MonitoringConfig holds the optional metrics listener configuration
type MonitoringConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	MetricsPath string `mapstructure:"metrics_path"`
	Port        int    `mapstructure:"port"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/hms")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	overrideWithEnv(&config)

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("bootstrap.admin_username", "admin")
	viper.SetDefault("bootstrap.admin_password", "admin123")

	viper.SetDefault("monitoring.enabled", false)
	viper.SetDefault("monitoring.metrics_path", "/metrics")
	viper.SetDefault("monitoring.port", 9090)

	viper.SetDefault("log_level", "info")
}

// overrideWithEnv overrides configuration with environment variables
func overrideWithEnv(config *Config) {
	if username := os.Getenv("HMS_ADMIN_USERNAME"); username != "" {
		config.Bootstrap.AdminUsername = username
	}

	if password := os.Getenv("HMS_ADMIN_PASSWORD"); password != "" {
		config.Bootstrap.AdminPassword = password
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.LogLevel = logLevel
	}
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Bootstrap.AdminUsername == "" {
		return fmt.Errorf("bootstrap admin username is required")
	}

	if config.Bootstrap.AdminPassword == "" {
		return fmt.Errorf("bootstrap admin password is required")
	}

	if config.Monitoring.Enabled {
		if config.Monitoring.Port <= 0 || config.Monitoring.Port > 65535 {
			return fmt.Errorf("invalid monitoring port: %d", config.Monitoring.Port)
		}
	}

	return nil
}
