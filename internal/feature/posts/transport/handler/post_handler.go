// Package handler はpostsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"micropost_backend/internal/api"
	"micropost_backend/internal/feature/posts/domain/entity"
	"micropost_backend/internal/feature/posts/transport/http/dto"
	"micropost_backend/internal/feature/posts/usecase"
)

// PostUsecase は投稿フィード操作のユースケースを定義します。
type PostUsecase interface {
	Create(ctx context.Context, token, content string) error
	List(ctx context.Context, token string, offset, limit int) ([]entity.PostWithAuthor, error)
	Delete(ctx context.Context, token string, id uint) error
}

// PostHandler は投稿フィードのHTTPリクエストを処理します。
type PostHandler struct {
	posts PostUsecase
}

// NewPostHandler はPostHandlerの新しいインスタンスを生成します。
func NewPostHandler(posts PostUsecase) *PostHandler {
	return &PostHandler{posts: posts}
}

// Create は投稿作成APIエンドポイントを処理します。
//
// POST /post {"token": "...", "content": "..."}
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.posts.Create(c.Request.Context(), req.Token, req.Content); err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
			return
		}
		slog.Error("create post error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusCreated, api.MessageResponse{Message: "ok"})
}

// List は投稿一覧APIエンドポイントを処理します。
//
// エンドポイント例:
// GET /post?token=xxxx&start=0&nr_records=10
func (h *PostHandler) List(c *gin.Context) {
	// 未指定の場合はデフォルト値を使用（既存クライアントの期待値は1件）
	start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
	nrRecords, _ := strconv.Atoi(c.DefaultQuery("nr_records", "1"))

	rows, err := h.posts.List(c.Request.Context(), c.Query("token"), start, nrRecords)
	if err != nil {
		if errors.Is(err, usecase.ErrForbidden) {
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
			return
		}
		slog.Error("list posts error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// Delete は投稿削除APIエンドポイントを処理します。
//
// DELETE /post/:id?token=xxxx
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid post id"})
		return
	}

	if err := h.posts.Delete(c.Request.Context(), c.Query("token"), uint(id)); err != nil {
		switch {
		case errors.Is(err, usecase.ErrForbidden):
			c.JSON(http.StatusForbidden, api.ErrorResponse{Error: "forbidden"})
		case errors.Is(err, usecase.ErrPostNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "post not found"})
		default:
			slog.Error("delete post error", "error", err, "id", id)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
