package captcha

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// Verifier はreCAPTCHAレスポンストークンをsiteverifyエンドポイントで検証します。
type Verifier struct {
	cfg    Config
	client *http.Client
}

// NewVerifier は指定された設定とHTTPクライアントでVerifierの新しいインスタンスを生成します。
func NewVerifier(cfg Config, client *http.Client) *Verifier {
	return &Verifier{cfg: cfg, client: client}
}

// verifyResponse はsiteverifyのJSONレスポンスを表します。
type verifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify はトークンを検証し、成功したかどうかを返します。
// プロバイダーへの到達失敗はerrorとして返し、判定は呼び出し側に委ねます。
func (v *Verifier) Verify(ctx context.Context, token string) (bool, error) {
	form := url.Values{}
	form.Set("secret", v.cfg.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.cfg.VerifyURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := v.client.Do(req)
	if err != nil {
		return false, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	var body verifyResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return false, err
	}

	if !body.Success && len(body.ErrorCodes) > 0 {
		slog.Warn("recaptcha verification failed", "error_codes", body.ErrorCodes)
	}
	return body.Success, nil
}
