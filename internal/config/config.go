package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Port            string
	LogLevel        string
	DataFile        string
	RefreshSchedule string

	// Engine tunables. These are knobs with historical defaults, not
	// derived figures.
	RevenueYield     float64
	AnomalyThreshold float64

	// SMTP settings for the fraud digest. Delivery is disabled when
	// SMTP_HOST is unset.
	SMTPHost       string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	SenderEmail    string
	AlertRecipient string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	revenueYield, err := getEnvFloat("REVENUE_YIELD", 0.15)
	if err != nil {
		return nil, err
	}
	anomalyThreshold, err := getEnvFloat("ANOMALY_THRESHOLD", 0.7)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		LogLevel:         getEnv("LOG_LEVEL", "INFO"),
		DataFile:         getEnv("DATA_FILE", "data/customers.csv"),
		RefreshSchedule:  getEnv("REFRESH_SCHEDULE", "@every 15m"),
		RevenueYield:     revenueYield,
		AnomalyThreshold: anomalyThreshold,
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         getEnv("SMTP_PORT", "587"),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		SenderEmail:      getEnv("SENDER_EMAIL", "alerts@risk-dashboard.local"),
		AlertRecipient:   getEnv("ALERT_RECIPIENT", ""),
	}

	if cfg.RevenueYield <= 0 || cfg.RevenueYield > 1 {
		return nil, fmt.Errorf("REVENUE_YIELD must be in (0, 1], got %v", cfg.RevenueYield)
	}
	if cfg.AnomalyThreshold < 0 || cfg.AnomalyThreshold > 1 {
		return nil, fmt.Errorf("ANOMALY_THRESHOLD must be in [0, 1], got %v", cfg.AnomalyThreshold)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) (float64, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
