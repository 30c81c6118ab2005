// Package handler はregistrationフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"micropost_backend/internal/api"
	"micropost_backend/internal/feature/registration/domain/entity"
	"micropost_backend/internal/feature/registration/transport/http/dto"
	"micropost_backend/internal/feature/registration/usecase"
)

// RegistrationUsecase は登録ワークフローのユースケースを定義します。
type RegistrationUsecase interface {
	// Request は登録を受け付け、バリデーション失敗コードのリストを返します。
	Request(ctx context.Context, name, email, password, captchaToken string) ([]string, error)
	// CheckPending はワンタイムIDの有効性を確認します。
	CheckPending(ctx context.Context, id string) (*entity.PendingRegistration, error)
	// Confirm は仮登録を確定し、新しいユーザー名を返します。
	Confirm(ctx context.Context, id string) (string, error)
}

// ResetUsecase はパスワードリセットワークフローのユースケースを定義します。
type ResetUsecase interface {
	// RequestReset はリセットを受け付けます。結果は外部に漏らしません。
	RequestReset(ctx context.Context, email string) error
	// ConfirmReset はリセットを確定し、対象ユーザー名を返します。
	ConfirmReset(ctx context.Context, id, newPassword string) (string, error)
}

// RegistrationHandler は登録・リセット操作のHTTPリクエストを処理します。
type RegistrationHandler struct {
	reg   RegistrationUsecase
	reset ResetUsecase
}

// NewRegistrationHandler はRegistrationHandlerの新しいインスタンスを生成します。
func NewRegistrationHandler(reg RegistrationUsecase, reset ResetUsecase) *RegistrationHandler {
	return &RegistrationHandler{reg: reg, reset: reset}
}

// Register は新規登録APIエンドポイントを処理します。
// 既存クライアントとの契約により、バリデーション失敗コードのリストを
// ステータス200のボディとして返します（空リスト = 受理）。
//
// POST /user
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	codes, err := h.reg.Request(c.Request.Context(), req.Name, req.Email, req.Password, req.Captcha)
	if err != nil {
		slog.Error("registration request error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	if codes == nil {
		codes = []string{}
	}

	c.JSON(http.StatusOK, codes)
}

// CheckPending はワンタイムIDの有効性確認APIエンドポイントを処理します。
//
// GET /user/tempUser?id=xxxx
func (h *RegistrationHandler) CheckPending(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "missing id"})
		return
	}

	pending, err := h.reg.CheckPending(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrPendingNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pending registration not found"})
			return
		}
		slog.Error("check pending error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, pending)
}

// Confirm は登録確定APIエンドポイントを処理します。
//
// GET /user?id=xxxx
func (h *RegistrationHandler) Confirm(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "missing id"})
		return
	}

	name, err := h.reg.Confirm(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrPendingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pending registration not found"})
		case errors.Is(err, usecase.ErrDuplicateUser):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "user already exists"})
		default:
			slog.Error("confirm registration error", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, api.NameResponse{Name: name})
}

// RequestReset はパスワードリセット受付APIエンドポイントを処理します。
// メールアドレスが登録済みかどうかを漏らさないため、常に同じ応答を返します。
//
// POST /user/reset
func (h *RegistrationHandler) RequestReset(c *gin.Context) {
	var req dto.ResetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.reset.RequestReset(c.Request.Context(), req.Email); err != nil {
		slog.Error("reset request error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}

// ConfirmReset はパスワードリセット確定APIエンドポイントを処理します。
//
// POST /user/reset/password?id=xxxx {"password": "..."}
func (h *RegistrationHandler) ConfirmReset(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "missing id"})
		return
	}

	var req dto.ResetPasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	name, err := h.reset.ConfirmReset(c.Request.Context(), id, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrPendingNotFound) || errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "pending registration not found"})
			return
		}
		slog.Error("confirm reset error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, api.NameResponse{Name: name})
}
