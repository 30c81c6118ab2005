// Package handler provides HTTP handlers for the profile feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"micropost_backend/internal/api"
	"micropost_backend/internal/feature/profile/domain/entity"
	"micropost_backend/internal/feature/profile/usecase"
)

// ProfileUsecase defines the usecase interface for profile operations.
type ProfileUsecase interface {
	// Get returns the profile for a name, or nil when none exists.
	Get(ctx context.Context, name string) (*entity.UserProfile, error)
	// SetPicture updates the profile picture URL for a name.
	SetPicture(ctx context.Context, name, url string) error
}

// SetPictureReq is the request body for updating a profile picture.
type SetPictureReq struct {
	URL string `json:"url" binding:"required"`
}

// ProfileHandler handles HTTP requests for profile operations.
type ProfileHandler struct {
	profiles ProfileUsecase
}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler(profiles ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// Get returns a profile by name. Public, no token required.
// Responds with JSON null when no profile exists.
//
// GET /profile/:name
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		slog.Error("get profile error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SetPicture updates the profile picture URL.
//
// POST /profile/:name {"url": "..."}
func (h *ProfileHandler) SetPicture(c *gin.Context) {
	var req SetPictureReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid request"})
		return
	}

	if err := h.profiles.SetPicture(c.Request.Context(), c.Param("name"), req.URL); err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "profile not found"})
			return
		}
		slog.Error("set profile picture error", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "ok"})
}
