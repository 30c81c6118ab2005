package di

import (
	"net/http"

	"micropost_backend/internal/platform/mail"
)

// NewMailSender creates a mail.Sender implementation.
// If an API key is configured, it returns the HTTP API client.
// Otherwise, it falls back to logging mail locally.
func NewMailSender(cfg mail.Config) mail.Sender {
	if cfg.APIKey != "" && cfg.BaseURL != "" {
		return mail.NewAPISender(cfg, &http.Client{Timeout: cfg.Timeout})
	}
	return mail.NewLogSender()
}
