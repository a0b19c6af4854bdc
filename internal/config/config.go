// Package config loads runtime configuration from environment variables.
package config

import "os"

// Config holds all runtime configuration for the job portal backend.
type Config struct {
	Port        string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	RapidAPIKey string
}

// Load reads environment variables, falling back to development defaults.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5000"),
		MongoURI:    getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "jobportal"),
		JWTSecret:   getEnv("JWT_SECRET", "default_secret_for_dev"),
		RapidAPIKey: os.Getenv("RAPID_API_KEY"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
