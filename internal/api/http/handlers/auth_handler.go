package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abkoo/helpdesk/internal/api/dto"
	"github.com/abkoo/helpdesk/internal/auth"
	"github.com/abkoo/helpdesk/internal/service"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// AuthHandler exposes login and logout.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Identifier == "" || req.Password == "" {
		return apperrors.NewValidationError("identifier and password required", nil)
	}

	result, err := h.auth.Login(c.Context(), req.Identifier, req.Password)
	if err != nil {
		return err
	}
	if result == nil {
		// Wrong password and unknown or deactivated account are the same
		// response on purpose.
		return apperrors.NewUnauthorized("invalid credentials")
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"session": dto.SessionResponse{
				UserID:      result.Session.UserID,
				DisplayName: result.Session.DisplayName,
				Role:        result.Session.Role,
			},
			"auth": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
		},
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	tokenID, ok := auth.TokenIDFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.auth.Logout(c.Context(), tokenID); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}
