package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/abkoo/helpdesk/internal/domain"
)

// TokenManager handles issuing and validating JWT session tokens. The token
// carries the full session payload, so every request arrives with explicit
// caller context instead of ambient server-side state.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Claims describes the JWT payload.
type Claims struct {
	DisplayName string          `json:"name"`
	Role        domain.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Session converts claims back into the session payload services consume.
func (c *Claims) Session() *domain.Session {
	return &domain.Session{
		UserID:      c.Subject,
		DisplayName: c.DisplayName,
		Role:        c.Role,
	}
}

// GenerateToken signs a session token. The returned token id (jti) feeds the
// revocation list on logout.
func (tm *TokenManager) GenerateToken(session *domain.Session) (token string, tokenID string, expiresAt time.Time, err error) {
	expiresAt = time.Now().Add(tm.ttl)
	tokenID = uuid.NewString()
	claims := &Claims{
		DisplayName: session.DisplayName,
		Role:        session.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			ID:        tokenID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return signed, tokenID, expiresAt, nil
}

// ParseToken validates and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
