package config

import (
	"os"

	"github.com/friendlink/friendlink/pkg/logger"
	"github.com/joho/godotenv"
)

// Config holds the environment-driven settings for the service.
type Config struct {
	Port     string
	MongoURI string
	DBName   string
}

// LoadConfig reads configuration from a .env file if present, falling back
// to the process environment.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logger.Log.Warn("No .env file found, using environment variables")
	}

	return &Config{
		Port:     getEnv("PORT", "5000"),
		MongoURI: getEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   getEnv("DB_NAME", "marn-friend"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
