package config

import (
	"os"
	"strings"
)

type Config struct {
	SupabaseURL       string
	SupabaseAnonKey   string
	SupabaseJWTSecret string
	Port              string
	Environment       string
	LogLevel          string
	AllowedOrigins    []string
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	return &Config{
		SupabaseURL:       os.Getenv("SUPABASE_URL"),
		SupabaseAnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		Port:              getEnvOrDefault("PORT", "8080"),
		Environment:       getEnvOrDefault("ENVIRONMENT", "development"),
		LogLevel:          getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins:    allowedOrigins,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
