package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	// Mock login credential. Real user storage replaces this eventually.
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	// .env is optional, env vars win
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "8000"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=real_estate port=5432 sslmode=disable"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = randomSecret()
		log.Println("[WARN] JWT_SECRET is not set, generated a random secret. Issued tokens will not survive a restart.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.AdminPassword == "admin123" {
		log.Println("[WARN] ADMIN_PASSWORD is using the default demo value, set your own for production.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=real_estate port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the default value, set your own Postgres connection for production.")
	}

	return cfg
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("[FATAL] could not generate JWT secret: %v", err)
	}
	return hex.EncodeToString(buf)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
