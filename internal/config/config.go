package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DatabaseURL   string
	JWTSecret     string
	TokenTTL      time.Duration
	ImgurClientID string
}

// Load reads configuration from the environment. godotenv.Load in main takes
// care of pulling a local .env file in first.
func Load() *Config {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "secret_key_change_me"),
		TokenTTL:      24 * time.Hour,
		ImgurClientID: os.Getenv("IMGUR_CLIENT_ID"),
	}

	if hours := os.Getenv("TOKEN_TTL_HOURS"); hours != "" {
		if h, err := strconv.Atoi(hours); err == nil && h > 0 {
			cfg.TokenTTL = time.Duration(h) * time.Hour
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
