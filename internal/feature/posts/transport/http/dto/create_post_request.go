// Package dto はpostsフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// CreatePostReq は/postエンドポイントのリクエストボディを表します。
// トークンの検証はユースケース側でForbiddenとして扱うため、bindingでは必須にしません。
type CreatePostReq struct {
	Token   string `json:"token"`
	Content string `json:"content" binding:"required"`
}
