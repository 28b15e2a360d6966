package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DBDriver    string // "sqlite" | "postgres"
	SQLitePath  string
	DatabaseURL string
	RedisAddr   string
	CacheTTL    time.Duration
}

func LoadConfig() *Config {
	// .env opcional, igual que en despliegues locales
	_ = godotenv.Load()

	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	return &Config{
		HTTPPort:    getEnv("HTTP_PORT", "3002"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		SQLitePath:  getEnv("SQLITE_PATH", "./cliniadmin.db"),
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost:5432/cliniadmin?sslmode=disable"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:    5 * time.Minute,
	}
}
