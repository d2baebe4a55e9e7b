package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abkoo/helpdesk/internal/auth"
	"github.com/abkoo/helpdesk/internal/config"
	"github.com/abkoo/helpdesk/internal/domain"
	"github.com/abkoo/helpdesk/internal/repository"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// AuthService coordinates login, logout and account creation.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	revoked    *auth.RevocationList
	bcryptCost int
	sessionTTL time.Duration
	logger     *zap.Logger
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Revocation *auth.RevocationList
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTL()),
		revoked:    deps.Revocation,
		bcryptCost: cfg.BcryptCost,
		sessionTTL: cfg.SessionTTL(),
		logger:     deps.Logger,
	}
}

// LoginResult carries the session payload and its bearer token.
type LoginResult struct {
	Session   *domain.Session
	Token     string
	ExpiresAt time.Time
}

// Login authenticates by identifier and password. Unknown identifier,
// deactivated account and wrong password all collapse into the same nil
// result, so callers cannot enumerate accounts. Store failures still surface
// as errors.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := s.users.FindActiveByLogin(ctx, identifier)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := auth.ComparePassword(user.CredentialHash, password); err != nil {
		return nil, nil
	}

	session := &domain.Session{
		UserID:      user.ID,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	}
	token, _, expiresAt, err := s.tokenMgr.GenerateToken(session)
	if err != nil {
		return nil, err
	}
	s.logger.Info("login", zap.String("user_id", user.ID))
	return &LoginResult{Session: session, Token: token, ExpiresAt: expiresAt}, nil
}

// Logout revokes the current session token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenID string) error {
	return s.revoked.Revoke(ctx, tokenID, time.Now().Add(s.sessionTTL))
}

// CreateUser hashes the password and delegates to the repository. The
// plaintext is neither stored nor logged.
func (s *AuthService) CreateUser(ctx context.Context, identifier, displayName, password string, role domain.UserRole) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.NewValidationError("identifier required", nil)
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password required", nil)
	}
	if role != domain.UserRoleUser && role != domain.UserRoleAdmin {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	if strings.TrimSpace(displayName) == "" {
		displayName = identifier
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Identifier:     identifier,
		DisplayName:    strings.TrimSpace(displayName),
		CredentialHash: hash,
		Role:           role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.String("user_id", user.ID), zap.String("role", string(role)))
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
