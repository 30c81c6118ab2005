// Package mail provides outbound email delivery for confirmation and reset links.
package mail

import (
	"os"
	"time"
)

// Config holds configuration for the transactional mail API client.
type Config struct {
	APIKey  string        // Bearer token for the mail provider
	BaseURL string        // Base URL of the mail API (e.g. "https://api.mail.example.com")
	From    string        // Sender address placed on every message
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads mail configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		APIKey:  os.Getenv("MAIL_API_KEY"),
		BaseURL: os.Getenv("MAIL_API_URL"),
		From:    os.Getenv("MAIL_FROM"),
		Timeout: 10 * time.Second,
	}
	if cfg.From == "" {
		cfg.From = "noreply@example.com"
	}
	return cfg
}
