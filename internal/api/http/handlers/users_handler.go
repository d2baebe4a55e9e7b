package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abkoo/helpdesk/internal/api/dto"
	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/service"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// UsersHandler exposes admin user management.
type UsersHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService, userService *service.UserService) *UsersHandler {
	return &UsersHandler{auth: authService, users: userService}
}

// Create handles POST /admin/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Role == "" {
		req.Role = domain.UserRoleUser
	}

	user, err := h.auth.CreateUser(c.Context(), req.Identifier, req.DisplayName, req.Password, req.Role)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": userSummary(user)})
}

// List handles GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.users.ListActive(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserSummary, 0, len(users))
	for i := range users {
		items = append(items, userSummary(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Deactivate handles DELETE /admin/users/:id.
func (h *UsersHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.users.Deactivate(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

func userSummary(user *domain.User) dto.UserSummary {
	return dto.UserSummary{
		ID:          user.ID,
		Identifier:  user.Identifier,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		CreatedAt:   user.CreatedAt,
	}
}
