package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the service settings read from the environment. main loads
// .env first via godotenv, so plain env vars and the dotenv file both work.
type Config struct {
	// FIRMS feed
	FirmsMapKey string
	FeedProduct string
	CountryCode string
	DayRange    int

	// Twilio
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	HTTPAddr string
}

func Load() (*Config, error) {
	dayRange := 1
	if s := os.Getenv("FIRMS_DAY_RANGE"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 10 {
			return nil, fmt.Errorf("invalid FIRMS_DAY_RANGE %q", s)
		}
		dayRange = n
	}

	cfg := &Config{
		FirmsMapKey:      os.Getenv("MAP_KEY"),
		FeedProduct:      getEnvOrDefault("FIRMS_PRODUCT", "VIIRS_SNPP_NRT"),
		CountryCode:      getEnvOrDefault("FIRMS_COUNTRY", "ARG"),
		DayRange:         dayRange,
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_FROM_NUMBER"),
		HTTPAddr:         getEnvOrDefault("HTTP_ADDR", ":8080"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.FirmsMapKey == "" {
		return fmt.Errorf("MAP_KEY is required")
	}
	if c.TwilioAccountSID == "" || c.TwilioAuthToken == "" {
		return fmt.Errorf("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required")
	}
	if c.TwilioFromNumber == "" {
		return fmt.Errorf("TWILIO_FROM_NUMBER is required")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
