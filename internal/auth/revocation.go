package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "helpdesk:revoked:"

// RevocationList tracks logged-out session tokens until they expire on their
// own. Backed by Redis so revocation survives process restarts.
type RevocationList struct {
	client *redis.Client
}

// NewRevocationList wraps a redis client.
func NewRevocationList(client *redis.Client) *RevocationList {
	return &RevocationList{client: client}
}

// Revoke marks a token id as logged out for the remainder of its lifetime.
func (l *RevocationList) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if l == nil || l.client == nil || tokenID == "" {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been logged out. Redis being
// unreachable counts as not revoked; the token signature was already checked.
func (l *RevocationList) IsRevoked(ctx context.Context, tokenID string) bool {
	if l == nil || l.client == nil || tokenID == "" {
		return false
	}
	n, err := l.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false
	}
	return n > 0
}
