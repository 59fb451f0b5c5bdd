package config

import (
	"fmt"
	"log"
	"os"
)

type Config struct {
	Port        string
	DatabaseDSN string
	JWTSecret   []byte
}

// Load reads configuration from the environment. The JWT secret has no
// default: token signing must never fall back to a hardcoded literal.
func Load() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ JWT_SECRET is not set in the environment")
	}
	return Config{
		Port:        getenv("PORT", "8080"),
		DatabaseDSN: databaseDSN(),
		JWTSecret:   []byte(secret),
	}
}

func databaseDSN() string {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return databaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
