package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/abkoo/helpdesk/internal/domain"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

const (
	sessionKey = "auth_session"
	tokenIDKey = "auth_token_id"
)

// AuthMiddleware validates bearer tokens and makes the session available to
// handlers.
type AuthMiddleware struct {
	tokens  *TokenManager
	revoked *RevocationList
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, revoked *RevocationList) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, revoked: revoked}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}
	if m.revoked.IsRevoked(c.Context(), claims.ID) {
		return apperrors.NewUnauthorized("session logged out")
	}

	c.Locals(sessionKey, claims.Session())
	c.Locals(tokenIDKey, claims.ID)
	return c.Next()
}

// SessionFromContext retrieves the authenticated session.
func SessionFromContext(c *fiber.Ctx) (*domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return nil, false
	}
	session, ok := val.(*domain.Session)
	return session, ok
}

// TokenIDFromContext retrieves the current token id for logout.
func TokenIDFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(tokenIDKey)
	if val == nil {
		return "", false
	}
	id, ok := val.(string)
	return id, ok
}

// RequireAdmin ensures the caller holds the admin role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, ok := SessionFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if !session.IsAdmin() {
			return apperrors.NewForbidden("admin role required")
		}
		return c.Next()
	}
}
