package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	BackendURL          string
	JWTSecret           string
	Port                string
	Environment         string
	AllowedOrigins      []string
	ScopeBidsToHospital bool
	HospitalID          int
}

func NewConfig() *Config {
	allowedOriginsStr := os.Getenv("ALLOWED_ORIGINS")
	allowedOrigins := []string{"http://localhost:3000"}
	if allowedOriginsStr != "" {
		allowedOrigins = strings.Split(allowedOriginsStr, ",")
	}

	// The upstream /bids/ endpoint is unscoped; these two only matter for
	// multi-hospital deployments.
	scopeBids, _ := strconv.ParseBool(os.Getenv("SCOPE_BIDS_TO_HOSPITAL"))
	hospitalID, _ := strconv.Atoi(os.Getenv("HOSPITAL_ID"))

	return &Config{
		BackendURL:          getEnvOrDefault("BACKEND_URL", "http://localhost:8000"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		Port:                getEnvOrDefault("PORT", "8080"),
		Environment:         getEnvOrDefault("ENVIRONMENT", "development"),
		AllowedOrigins:      allowedOrigins,
		ScopeBidsToHospital: scopeBids,
		HospitalID:          hospitalID,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
