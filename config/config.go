package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	Port string

	AWSRegion         string
	ListingsTable     string
	InteractionsTable string
	S3Bucket          string

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
}

// Load reads the .env file (if present) and returns a populated Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, falling back to system env vars")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		AWSRegion:         os.Getenv("AWS_REGION"),
		ListingsTable:     getEnv("LISTINGS_TABLE", "Listings"),
		InteractionsTable: getEnv("INTERACTIONS_TABLE", "FeedInteractions"),
		S3Bucket:          os.Getenv("S3_BUCKET_NAME"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:     getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}
}

// CatalogConfigured reports whether a DynamoDB-backed catalog is
// available. When false the feed runs on seed data only and the
// condition is surfaced through /health rather than treated as an
// error.
func (c *Config) CatalogConfigured() bool {
	return c.AWSRegion != "" && c.ListingsTable != ""
}

// StorageConfigured reports whether S3 uploads are available.
func (c *Config) StorageConfigured() bool {
	return c.AWSRegion != "" && c.S3Bucket != ""
}

// AIConfigured reports whether the generative collaborator is
// available.
func (c *Config) AIConfigured() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
