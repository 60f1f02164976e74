package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Provider       string
	Model          string
	Temperature    *float64
	OfflineMode    bool
	RedisURL       string
	DatabaseURL    string
	JWTSecret      string
	AccessKeyHash  string
	FrontendOrigin string
	LogLevel       string
}

// Load reads configuration from the environment, with .env support for local
// development. Optional integrations (Redis, Postgres, auth) stay disabled
// when their variables are unset.
func Load() Config {
	_ = godotenv.Load()

	// OPENAI_API_KEY and PUBLIC_OPENAI_API_KEY are read by the checker
	// itself, which owns credential resolution.
	cfg := Config{
		Port:           os.Getenv("PORT"),
		Provider:       os.Getenv("SCAM_PROVIDER"),
		Model:          os.Getenv("SCAM_MODEL"),
		RedisURL:       os.Getenv("REDIS_URL"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessKeyHash:  os.Getenv("ACCESS_KEY_HASH"),
		FrontendOrigin: os.Getenv("FRONTEND_ORIGIN"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.FrontendOrigin == "" {
		cfg.FrontendOrigin = "http://localhost:5173"
	}
	if value := os.Getenv("SCAM_TEMPERATURE"); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			cfg.Temperature = &parsed
		}
	}
	if value := os.Getenv("OFFLINE_MODE"); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			cfg.OfflineMode = parsed
		}
	}
	return cfg
}
