package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/savantlab/digital-product-system/internal/auth/domain"
)

const (
	codeKeyPrefix     = "otp:"
	attemptsKeyPrefix = "otp_attempts:"
	magicKeyPrefix    = "magic:"
	revokedKeyPrefix  = "revoked:jti:"
)

// Store implements domain.CredentialStore on Redis. Every method is a
// single round trip built on atomic commands: SET EX, GETDEL, INCR,
// EXISTS. Magic-link consumption in particular relies on GETDEL so that
// two concurrent consumers cannot both spend a token.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// NewClient parses a redis:// URL and connects.
func NewClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}
	return redis.NewClient(opts), nil
}

func (s *Store) StoreCode(ctx context.Context, email, code string, ttl time.Duration) error {
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, codeKeyPrefix+email, code, ttl)
	pipe.Set(ctx, attemptsKeyPrefix+email, 0, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Store) Code(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, codeKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return code, err
}

func (s *Store) ConsumeCode(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, codeKeyPrefix+email, attemptsKeyPrefix+email).Err()
}

func (s *Store) Attempts(ctx context.Context, email string) (int, error) {
	raw, err := s.rdb.Get(ctx, attemptsKeyPrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	attempts, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt attempt counter for %s: %w", email, err)
	}
	return attempts, nil
}

func (s *Store) RecordFailedAttempt(ctx context.Context, email string) (int, error) {
	n, err := s.rdb.Incr(ctx, attemptsKeyPrefix+email).Result()
	return int(n), err
}

func (s *Store) StoreMagicLink(ctx context.Context, token string, payload *domain.MagicLinkPayload, ttl time.Duration) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, magicKeyPrefix+token, raw, ttl).Err()
}

func (s *Store) ConsumeMagicLink(ctx context.Context, token string) (*domain.MagicLinkPayload, error) {
	raw, err := s.rdb.GetDel(ctx, magicKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var payload domain.MagicLinkPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("corrupt magic link payload: %w", err)
	}
	return &payload, nil
}

// RevokeSession stores one entry per jti so each revocation expires on its
// own schedule, exactly when the credential it blocks would have expired.
func (s *Store) RevokeSession(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

func (s *Store) IsSessionRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
