// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/votesys/auth"
	"github.com/danielhkuo/votesys/cliparse"
	"github.com/danielhkuo/votesys/middleware"
	"github.com/danielhkuo/votesys/models"
	"github.com/danielhkuo/votesys/users"
)

type UserHandler struct {
	registry *users.Registry
	cfg      cliparse.Config
}

func NewUserHandler(registry *users.Registry, cfg cliparse.Config) *UserHandler {
	return &UserHandler{registry: registry, cfg: cfg}
}

// Register handles POST /api/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}
	if req.Password == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "password is required")
		return
	}

	err := h.registry.Register(req.Username, req.Email, req.Password, models.RoleUser)
	if errors.Is(err, models.ErrUsernameTaken) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Username already taken")
		return
	}
	if err != nil {
		slog.Error("failed to register user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to register")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.PublicUser{
		Username: req.Username,
		Email:    req.Email,
		Role:     models.RoleUser,
	})
}

// Login handles POST /api/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	user, err := h.registry.Authenticate(req.Username, req.Password)
	if errors.Is(err, models.ErrInvalidCredentials) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid username or password")
		return
	}
	if errors.Is(err, models.ErrEmailNotConfirmed) {
		middleware.ErrorResponse(w, http.StatusForbidden, "Email not confirmed")
		return
	}
	if err != nil {
		slog.Error("failed to authenticate user", "error", err, "username", req.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	ttl := time.Duration(h.cfg.TokenTTLMinutes) * time.Minute
	token, err := auth.CreateAccessToken(h.cfg.JWTSecret, user.Username, user.Role, ttl)
	if err != nil {
		slog.Error("failed to issue access token", "error", err, "username", user.Username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "username", user.Username, "role", user.Role)

	middleware.JSONResponse(w, http.StatusOK, models.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

// ListUsers handles GET /api/users (admin only, enforced by the router)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	list, err := h.registry.List()
	if err != nil {
		slog.Error("failed to list users", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, list)
}

// DeleteUser handles DELETE /api/users/{username} (admin only)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	username := r.PathValue("username")
	if username == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "username is required")
		return
	}

	err := h.registry.Delete(username)
	if errors.Is(err, models.ErrUserNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete user", "error", err, "username", username)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
