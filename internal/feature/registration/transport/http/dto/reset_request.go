package dto

// ResetReq は/user/resetエンドポイントのリクエストボディを表します。
type ResetReq struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordReq は/user/reset/passwordエンドポイントのリクエストボディを表します。
// ワンタイムIDはクエリパラメータで渡されます。
type ResetPasswordReq struct {
	Password string `json:"password" binding:"required"`
}
