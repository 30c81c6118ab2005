// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// パスワードの空チェックはユースケース側でUnauthorizedとして扱うため、
// bindingでは必須にしません。
type LoginReq struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password"`
}
