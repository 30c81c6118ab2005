package router

import (
	"github.com/gin-gonic/gin"

	authhandler "micropost_backend/internal/feature/auth/transport/handler"
	postshandler "micropost_backend/internal/feature/posts/transport/handler"
	profilehandler "micropost_backend/internal/feature/profile/transport/handler"
	registrationhandler "micropost_backend/internal/feature/registration/transport/handler"
	"micropost_backend/internal/interface/handler"
)

func NewRouter(authHandler *authhandler.AuthHandler, registration *registrationhandler.RegistrationHandler,
	profile *profilehandler.ProfileHandler, posts *postshandler.PostHandler) *gin.Engine {
	r := gin.Default()

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// ログイン（トークン発行・更新）
	r.POST("/login", authHandler.Login)

	// 登録・リセットフロー（既存クライアントのパスを維持）
	user := r.Group("/user")
	{
		// 新規登録の受付（仮登録）
		user.POST("", registration.Register)
		// メールリンクからの登録確定
		user.GET("", registration.Confirm)
		// 確認リンクの生死確認
		user.GET("/tempUser", registration.CheckPending)
		// パスワードリセットの受付
		user.POST("/reset", registration.RequestReset)
		// リセットの確定
		user.POST("/reset/password", registration.ConfirmReset)
		// ユーザー取得（トークン必須）
		user.GET("/:id", authHandler.GetUser)
	}

	// プロフィール（公開読み取り）
	profileGroup := r.Group("/profile")
	{
		profileGroup.GET("/:name", profile.Get)
		profileGroup.POST("/:name", profile.SetPicture)
	}

	// 投稿フィード（各操作がトークンを検証する）
	post := r.Group("/post")
	{
		post.POST("", posts.Create)
		post.GET("", posts.List)
		post.DELETE("/:id", posts.Delete)
	}

	return r
}
