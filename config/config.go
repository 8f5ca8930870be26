package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv reads a .env file if present. Missing files are fine; in
// production everything comes from real environment variables.
func LoadEnv() {
	_ = godotenv.Load()
}

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}
