package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	API     APIConfig
	Gateway GatewayConfig
}

type AppConfig struct {
	Env           string
	LogLevel      string
	BasePath      string
	ToastDuration time.Duration
}

type APIConfig struct {
	Base    string
	Timeout time.Duration
}

type GatewayConfig struct {
	Port string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// The .env file is optional; environment variables alone are enough.
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("BASE_PATH", "/")
	viper.SetDefault("API_BASE", "http://localhost:8080")
	viper.SetDefault("GATEWAY_PORT", "8080")

	httpTimeout, err := time.ParseDuration(viper.GetString("HTTP_TIMEOUT"))
	if err != nil {
		httpTimeout = 20 * time.Second
	}

	toastDuration, err := time.ParseDuration(viper.GetString("TOAST_DURATION"))
	if err != nil {
		toastDuration = 3 * time.Second
	}

	config := &Config{
		App: AppConfig{
			Env:           viper.GetString("APP_ENV"),
			LogLevel:      viper.GetString("LOG_LEVEL"),
			BasePath:      viper.GetString("BASE_PATH"),
			ToastDuration: toastDuration,
		},
		API: APIConfig{
			Base:    viper.GetString("API_BASE"),
			Timeout: httpTimeout,
		},
		Gateway: GatewayConfig{
			Port: viper.GetString("GATEWAY_PORT"),
		},
	}

	return config, nil
}
