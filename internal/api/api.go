// Package api は各フィーチャーのハンドラーが共有するJSONレスポンス型を定義します。
package api

// ErrorResponse は単一のエラーメッセージを持つレスポンスボディです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果のメッセージを持つレスポンスボディです。
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse は/loginの成功レスポンスです。
// トークンと認証されたユーザーのIDを返します。
type LoginResponse struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
}

// NameResponse は登録確認・パスワードリセット確認の成功レスポンスです。
type NameResponse struct {
	Name string `json:"name"`
}
