package config

import (
	"os"

	"github.com/joho/godotenv"
)

func Init() {
	// Load .env, fall back to the process environment.
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	dbDSN := os.Getenv("DB_DSN")
	if dbDSN == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}
