package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Database holds what the product fetcher needs to open its own connection.
type Database struct {
	Driver string // "postgres" (lib/pq) ou "pgx"
	URL    string
}

type Config struct {
	Database       Database
	BaseURL        string
	SitemapPath    string
	RedisURL       string
	PushgatewayURL string
	LogLevel       string
}

func Load() *Config {
	// Carrega .env da raiz do projeto
	_ = godotenv.Load("../../.env")
	// Se não encontrar, tenta no diretório atual
	_ = godotenv.Load()
	return &Config{
		Database: Database{
			Driver: getEnv("DB_DRIVER", "postgres"),
			URL:    os.Getenv("DATABASE_URL"),
		},
		BaseURL:        getEnv("SITE_BASE_URL", "https://www.elitemedicaleservices.tn"),
		SitemapPath:    getEnv("SITEMAP_PATH", "public/sitemap.xml"),
		RedisURL:       os.Getenv("REDIS_URL"),
		PushgatewayURL: os.Getenv("PUSHGATEWAY_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
