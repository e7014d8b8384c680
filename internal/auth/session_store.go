package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	apperrors "linkfolio/internal/errors"
)

const sessionKeyPrefix = "session:"

// SessionStore defines the interface for server-side session state.
// Tokens are opaque: nothing about the user is recoverable from the
// token itself, and validity lives entirely in the store.
type SessionStore interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (token string, err error)
	Resolve(ctx context.Context, token string) (userID uint, ok bool, err error)
	Destroy(ctx context.Context, token string) error
}

// RedisSessionStore keeps token -> user id mappings in Redis with an
// absolute TTL enforced by key expiry. Unlike the read cache this store
// is authoritative, so Redis errors propagate instead of being
// swallowed: a session store that loses writes silently breaks the
// logout and expiry guarantees.
type RedisSessionStore struct {
	client *redis.Client
}

// Ensure RedisSessionStore implements SessionStore
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store on an existing client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

// Create issues a fresh opaque token bound to userID. SetNX guarantees
// a token is never silently overwritten, which serializes creation per
// token; distinct tokens need no coordination.
func (s *RedisSessionStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	token := uuid.NewString()
	key := sessionKeyPrefix + token

	set, err := s.client.SetNX(ctx, key, strconv.FormatUint(uint64(userID), 10), ttl).Result()
	if err != nil {
		return "", fmt.Errorf("%w: create session: %v", apperrors.ErrStoreUnavailable, err)
	}
	if !set {
		// A v4 UUID collision is effectively impossible; treat it as a
		// store fault rather than looping.
		return "", fmt.Errorf("%w: session token collision", apperrors.ErrStoreUnavailable)
	}
	return token, nil
}

// Resolve maps a token back to its user id. An unknown or expired token
// is (0, false, nil) — absence, not an error.
func (s *RedisSessionStore) Resolve(ctx context.Context, token string) (uint, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	val, err := s.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: resolve session: %v", apperrors.ErrStoreUnavailable, err)
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		// Corrupt record: treat as no session rather than leaking detail.
		return 0, false, nil
	}
	return uint(userID), true, nil
}

// Destroy removes a session. Destroying a token that no longer exists
// is a no-op, which makes logout idempotent.
func (s *RedisSessionStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("%w: destroy session: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
