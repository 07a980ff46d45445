package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the binaries read from the environment. A .env
// file is loaded when present (local development); real deployments set
// the variables directly.
type Config struct {
	DatabaseURL string
	ListenAddr  string

	JWTSecret string
	JWTTTL    time.Duration

	ResetCodePepper    string
	ResetCodeTTL       time.Duration
	ResetCodeCooldown  time.Duration
	DevMailerEnabled   bool
	CORSAllowedOrigins string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		ListenAddr:         getEnv("LISTEN_ADDR", ":8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		JWTTTL:             getDuration("JWT_TTL", 24*time.Hour),
		ResetCodePepper:    getEnv("RESET_CODE_PEPPER", ""),
		ResetCodeTTL:       getDuration("RESET_CODE_TTL", 15*time.Minute),
		ResetCodeCooldown:  getDuration("RESET_CODE_COOLDOWN", time.Minute),
		DevMailerEnabled:   getBool("DEV_MAILER", true),
		CORSAllowedOrigins: os.Getenv("CORS_ALLOWED_ORIGINS"),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: invalid duration %s=%q, using default %s", key, v, fallback)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
