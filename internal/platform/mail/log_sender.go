package mail

import (
	"context"
	"log/slog"
)

// LogSender logs mail instead of sending it. Meant for local development
// where no mail API key is configured; it logs addresses and full bodies,
// so it must not be used in production.
type LogSender struct{}

var _ Sender = (*LogSender)(nil)

// NewLogSender creates a new LogSender.
func NewLogSender() *LogSender {
	return &LogSender{}
}

// Send logs the message and always succeeds.
func (s *LogSender) Send(_ context.Context, to, subject, htmlBody string) error {
	slog.Info("send email", "to", to, "subject", subject, "body", htmlBody)
	return nil
}
