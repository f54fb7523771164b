package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const blacklistKeyPrefix = "blacklist:jti:%s"

func blacklistKey(jti string) string {
	return fmt.Sprintf(blacklistKeyPrefix, jti)
}

// BlacklistToken marks a refresh token's jti as revoked until the token
// would have expired anyway. A nil client degrades gracefully: logout
// still succeeds, the token just cannot be actively revoked.
func BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return client.Set(ctx, blacklistKey(jti), "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the jti has been revoked. When Redis
// is unavailable the check fails open and the token is treated as live.
func IsTokenBlacklisted(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	_, err := client.Get(ctx, blacklistKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		return false
	}
	return true
}
