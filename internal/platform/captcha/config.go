// Package captcha provides a client for the reCAPTCHA verification API.
package captcha

import (
	"os"
	"time"
)

// Config holds configuration for the reCAPTCHA client.
type Config struct {
	Secret    string        // Server-side secret for the siteverify call
	VerifyURL string        // Verification endpoint
	Timeout   time.Duration // HTTP request timeout
}

// LoadConfig loads reCAPTCHA configuration from environment variables.
func LoadConfig() Config {
	cfg := Config{
		Secret:    os.Getenv("RECAPTCHA_SECRET"),
		VerifyURL: os.Getenv("RECAPTCHA_VERIFY_URL"),
		Timeout:   10 * time.Second,
	}
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = "https://www.google.com/recaptcha/api/siteverify"
	}
	return cfg
}
