package dto

import (
	"time"

	"github.com/abkoo/helpdesk/internal/domain"
)

// CreateUserRequest payload for admin user creation.
type CreateUserRequest struct {
	Identifier  string          `json:"identifier"`
	DisplayName string          `json:"display_name"`
	Password    string          `json:"password"`
	Role        domain.UserRole `json:"role"`
}

// UserSummary response for the assignment picker and admin listing. The
// credential hash never leaves the service.
type UserSummary struct {
	ID          string          `json:"id"`
	Identifier  string          `json:"identifier"`
	DisplayName string          `json:"display_name"`
	Role        domain.UserRole `json:"role"`
	CreatedAt   time.Time       `json:"created_at"`
}
