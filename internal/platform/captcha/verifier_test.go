package captcha

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse form: %v", err)
		}
		if got := r.PostFormValue("secret"); got != "test-secret" {
			t.Errorf("expected secret test-secret, got %q", got)
		}
		if got := r.PostFormValue("response"); got != "client-token" {
			t.Errorf("expected response client-token, got %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	v := NewVerifier(Config{Secret: "test-secret", VerifyURL: server.URL}, server.Client())

	ok, err := v.Verify(context.Background(), "client-token")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifier_Verify_Failure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	v := NewVerifier(Config{Secret: "test-secret", VerifyURL: server.URL}, server.Client())

	ok, err := v.Verify(context.Background(), "bad-token")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifier_Verify_ProviderUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := server.Client()
	server.Close() // シャットダウン済みのエンドポイントへ接続させる

	v := NewVerifier(Config{Secret: "test-secret", VerifyURL: server.URL}, client)

	ok, err := v.Verify(context.Background(), "client-token")
	assert.Error(t, err)
	assert.False(t, ok)
}
