package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// TokenTTL is how long an issued access token stays valid.
const TokenTTL = 30 * time.Minute

type Config struct {
	Port        string
	DatabaseURL string
	SQLitePath  string
	JWTSecret   string
	UploadsDir  string
	FrontendDir string
	CORSOrigin  string
	TokenTTL    time.Duration
}

// Load reads configuration from the environment. When DATABASE_URL is unset
// the server falls back to a local sqlite file, so a bare checkout runs
// without any external services.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	return &Config{
		Port:        getEnv("PORT", "5000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SQLitePath:  getEnv("SQLITE_PATH", "artgallery.db"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-me"),
		UploadsDir:  getEnv("UPLOADS_DIR", "uploads"),
		FrontendDir: getEnv("FRONTEND_DIR", "dist"),
		CORSOrigin:  getEnv("CORS_ORIGIN", ""),
		TokenTTL:    TokenTTL,
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
