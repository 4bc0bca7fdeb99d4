package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string `envconfig:"PORT"         default:":8080"`
	DataFile    string `envconfig:"DATA_FILE"    default:"store_data.json"`
	LogLevel    string `envconfig:"LOG_LEVEL"    default:"info"`
	DefaultLang string `envconfig:"DEFAULT_LANG" default:"en"`
}

var (
	config Config
	once   sync.Once
)

func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		err := godotenv.Load()
		if err != nil && !os.IsNotExist(err) {
			logger.Warnf("Error loading .env file (but continuing): %v", err)
		} else if err == nil {
			logger.Info("Loaded configuration from .env file")
		}

		err = envconfig.Process("", &config)
		if err != nil {
			logger.Fatalf("Failed to process configuration from environment variables: %v", err)
		}

		logger.Infof("Configuration loaded: Port=%s, DataFile=%s, LogLevel=%s, DefaultLang=%s",
			config.Port, config.DataFile, config.LogLevel, config.DefaultLang)
	})
	return &config
}
