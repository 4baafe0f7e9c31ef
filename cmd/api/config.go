package main

import (
	"log"
	"os"

	"oakline-partners/pkg/config"
	"oakline-partners/pkg/logger"

	"github.com/joho/godotenv"
)

const defaultConfigPath = "configs/config.yaml"

// LoadConfiguration prepares everything main needs before the App exists:
// .env overrides, the global logger, then the typed config. Failures here
// are fatal since nothing can run without a config.
func LoadConfiguration() *config.Config {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	logger.InitLogger(os.Stdout, os.Getenv("LOG_LEVEL"))

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config %s: %v", path, err)
	}
	logger.GlobalLogger.Printf("Configuration loaded: path=%s, env=%s", path, os.Getenv("ENV"))
	return cfg
}
