package domain

import "time"

// UserRole enumerates the two roles the dashboard knows.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

// User is the account model for employees and administrators. Deactivated
// accounts stay in the table so ticket references keep resolving.
type User struct {
	ID             string
	Identifier     string
	DisplayName    string
	CredentialHash string
	Role           UserRole
	Active         bool
	CreatedAt      time.Time
	DeletedAt      *time.Time
}

// Session is the minimal payload handed to the presentation layer after a
// successful login.
type Session struct {
	UserID      string
	DisplayName string
	Role        UserRole
}

// IsAdmin reports whether the session belongs to an administrator.
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == UserRoleAdmin
}
