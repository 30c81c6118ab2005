package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// Sender delivers a single email. Implementations must not retry on failure;
// the workflows decide what a failed send means.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// APISender sends mail through a JSON HTTP API.
type APISender struct {
	cfg    Config
	client *http.Client
}

// APISenderがSenderを実装していることをコンパイル時に検証します。
var _ Sender = (*APISender)(nil)

// NewAPISender creates an APISender with the given config and HTTP client.
func NewAPISender(cfg Config, client *http.Client) *APISender {
	return &APISender{cfg: cfg, client: client}
}

type messageJSON struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
}

// Send posts the message to the provider and treats any non-2xx status as failure.
func (s *APISender) Send(ctx context.Context, to, subject, htmlBody string) error {
	body := messageJSON{
		From:     s.cfg.From,
		To:       to,
		Subject:  subject,
		HTMLBody: htmlBody,
	}

	var b bytes.Buffer
	if err := json.NewEncoder(&b).Encode(body); err != nil {
		return fmt.Errorf("failed to encode mail json: %w", err)
	}

	u := fmt.Sprintf("%s/messages", s.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &b)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("mail api http %d", res.StatusCode)
	}
	return nil
}
