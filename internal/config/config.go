package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	ServerAddress    string `mapstructure:"SERVER_ADDRESS"`
	DBSource         string `mapstructure:"DB_SOURCE"`
	LogLevel         string `mapstructure:"LOG_LEVEL"`
	GinMode          string `mapstructure:"GIN_MODE"`
	SessionCacheSize int    `mapstructure:"SESSION_CACHE_SIZE"`
	BatchWorkers     int    `mapstructure:"BATCH_WORKERS"`
	MaxUploadBytes   int64  `mapstructure:"MAX_UPLOAD_BYTES"`
}

// LoadConfig reads app.env from path, then lets environment variables override it.
// A missing app.env is not an error.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("SESSION_CACHE_SIZE", 1024)
	v.SetDefault("BATCH_WORKERS", 4)
	v.SetDefault("MAX_UPLOAD_BYTES", 10<<20)

	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if config.SessionCacheSize < 1 {
		return config, fmt.Errorf("config: SESSION_CACHE_SIZE must be positive, got %d", config.SessionCacheSize)
	}
	if config.BatchWorkers < 1 {
		return config, fmt.Errorf("config: BATCH_WORKERS must be positive, got %d", config.BatchWorkers)
	}

	return config, nil
}
