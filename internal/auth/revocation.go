package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// RevocationList is a redis-backed denylist of tokens invalidated before
// their expiry (logout). A nil *RevocationList is valid and revokes nothing,
// so deployments without redis still work.
type RevocationList struct {
	rdb *redis.Client
}

func NewRevocationList(rdb *redis.Client) *RevocationList {
	return &RevocationList{rdb: rdb}
}

// Revoke denies the token for ttl, after which it has expired anyway.
func (l *RevocationList) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if l == nil {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	if err := l.rdb.Set(ctx, revokedKeyPrefix+token, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (l *RevocationList) IsRevoked(ctx context.Context, token string) (bool, error) {
	if l == nil {
		return false, nil
	}
	n, err := l.rdb.Exists(ctx, revokedKeyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	return n > 0, nil
}
