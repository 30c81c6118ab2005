// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"micropost_backend/internal/api"
	"micropost_backend/internal/feature/auth/domain/entity"
	"micropost_backend/internal/feature/auth/transport/http/dto"
	"micropost_backend/internal/feature/auth/usecase"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Login はユーザーを認証し、成功時にトークンとユーザーIDを返します。
	Login(ctx context.Context, name, password string) (string, uint, error)
	// GetUser はトークンを検証した上でIDでユーザーを取得します。
	GetUser(ctx context.Context, token string, id uint) (*entity.User, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login はログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（どの要素が不正かは公開しない）
// - 成功時はトークンとユーザーID付きで200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	token, userID, err := h.auth.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrUnauthorized) {
			slog.Warn("login failed", "name", req.Name, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "invalid name or password"})
			return
		}
		slog.Error("login error", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	slog.Info("user login successful", "name", req.Name, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.LoginResponse{Token: token, UserID: userID})
}

// GetUser はユーザー取得APIエンドポイントを処理します。
//
// エンドポイント例:
// GET /user/:id?token=xxxx
func (h *AuthHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid user id"})
		return
	}

	user, err := h.auth.GetUser(c.Request.Context(), c.Query("token"), uint(id))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTokenInvalid):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "user not found"})
		default:
			slog.Error("get user error", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, user)
}
