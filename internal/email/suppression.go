package email

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

const suppressionKey = "email:suppressions"

// RedisSuppressionList keeps the suppression set in the shared store so it
// survives restarts and is visible to every process.
type RedisSuppressionList struct {
	rdb *redis.Client
}

func NewRedisSuppressionList(rdb *redis.Client) *RedisSuppressionList {
	return &RedisSuppressionList{rdb: rdb}
}

func (s *RedisSuppressionList) Add(ctx context.Context, email string) error {
	return s.rdb.SAdd(ctx, suppressionKey, normalize(email)).Err()
}

func (s *RedisSuppressionList) IsSuppressed(ctx context.Context, email string) (bool, error) {
	return s.rdb.SIsMember(ctx, suppressionKey, normalize(email)).Result()
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
