package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DatabaseURL string
	SessionKey  string
}

func loadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:        getenv("ADDR", ":8084"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=shift_tracker sslmode=disable"),
		SessionKey:  getenv("SESSION_KEY", "dev-session-key-change-this"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
