package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	StaticDir    string
	GeminiAPIKey string
	GeminiModel  string
}

// Load reads .env if present and falls back to the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	return Config{
		Port:         getenv("PORT", "3000"),
		StaticDir:    getenv("STATIC_DIR", "dist"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-3.1-pro-preview"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
