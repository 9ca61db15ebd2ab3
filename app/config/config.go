package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the process configuration. It is built once at startup and
// passed down explicitly; nothing reads the environment after Load returns.
type Config struct {
	Addr      string
	DBDialect string
	DBDSN     string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

// Load reads an optional .env file and resolves the configuration from the
// environment, falling back to development defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment")
	}

	return &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBDialect:     getEnv("DB_DIALECT", "sqlite3"),
		DBDSN:         getEnv("DB_DSN", "data/blog.db"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
