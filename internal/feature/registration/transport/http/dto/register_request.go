// Package dto はregistrationフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// RegisterReq は/userエンドポイント（新規登録）のリクエストボディを表します。
// 名前・メールの重複とcaptchaの失敗はコードのリストとして返すため、
// ここでは存在チェックのみを行います。
type RegisterReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Captcha  string `json:"captcha"`
}
