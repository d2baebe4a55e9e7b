package dto

import (
	"time"

	"github.com/abkoo/helpdesk/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// SessionResponse is the minimal session payload the dashboard keeps.
type SessionResponse struct {
	UserID      string          `json:"user_id"`
	DisplayName string          `json:"display_name"`
	Role        domain.UserRole `json:"role"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
