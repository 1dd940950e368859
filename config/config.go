package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost string
	DBName string
	DBUser string
	DBPass string
	DBPort string

	GeminiAPIKey  string
	GeminiBaseURL string

	Port string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment, honoring a local .env
// file when present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBHost: getEnv("DB_HOST", "localhost"),
		DBName: getEnv("DB_NAME", "myvibesaas"),
		DBUser: getEnv("DB_USER", "postgres"),
		DBPass: os.Getenv("DB_PASS"),
		DBPort: getEnv("DB_PORT", "5432"),

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: os.Getenv("GEMINI_BASE_URL"),

		Port: getEnv("PORT", "8080"),
	}
}

// DSN builds the lib/pq connection string from the discrete DB_* settings.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName,
	)
}
