package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPISender_Send_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/messages" {
			t.Errorf("expected /messages, got %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer token, got %q", got)
		}

		var body messageJSON
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body.To != "alice@example.com" {
			t.Errorf("expected recipient alice@example.com, got %q", body.To)
		}
		if body.From != "noreply@test.com" {
			t.Errorf("expected sender noreply@test.com, got %q", body.From)
		}

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		From:    "noreply@test.com",
		Timeout: 5 * time.Second,
	}
	sender := NewAPISender(cfg, server.Client())

	err := sender.Send(context.Background(), "alice@example.com", "Confirm", "<p>hi</p>")
	assert.NoError(t, err)
}

func TestAPISender_Send_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL, From: "noreply@test.com"}
	sender := NewAPISender(cfg, server.Client())

	err := sender.Send(context.Background(), "alice@example.com", "Confirm", "<p>hi</p>")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "422")
}

func TestMemorySender_Send(t *testing.T) {
	t.Parallel()

	sender := NewMemorySender()

	err := sender.Send(context.Background(), "a@example.com", "sub1", "body1")
	require.NoError(t, err)
	err = sender.Send(context.Background(), "b@example.com", "sub2", "body2")
	require.NoError(t, err)

	require.Len(t, sender.Sent, 2)
	assert.Equal(t, "a@example.com", sender.Sent[0].To)
	assert.Equal(t, "sub1", sender.Sent[0].Subject)
	assert.Equal(t, "body2", sender.Sent[1].HTMLBody)
}
