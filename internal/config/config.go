package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

const defaultBasePrice = 1299.0

type Config struct {
	LogLevel         string  `mapstructure:"HOTEL_LOG_LEVEL"`
	Seed             bool    `mapstructure:"HOTEL_SEED"`
	DefaultBasePrice float64 `mapstructure:"HOTEL_DEFAULT_BASE_PRICE"`
}

// Load reads config.env from dir when present; HOTEL_* environment variables
// override it.
func Load(dir string) (Config, error) {
	v := viper.New()

	v.SetDefault("HOTEL_LOG_LEVEL", "info")
	v.SetDefault("HOTEL_SEED", true)
	v.SetDefault("HOTEL_DEFAULT_BASE_PRICE", defaultBasePrice)

	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if conf.DefaultBasePrice <= 0 {
		return Config{}, fmt.Errorf("HOTEL_DEFAULT_BASE_PRICE must be positive, got %v", conf.DefaultBasePrice)
	}

	return conf, nil
}
