package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps user hashes between runs, keyed by username.
type TokenStore interface {
	Load(ctx context.Context, username string) (string, bool, error)
	Save(ctx context.Context, username, hash string) error
	Delete(ctx context.Context, username string) error
}

type redisTokenStore struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisTokenStore returns a store whose entries expire after ttl. A zero
// ttl keeps them forever.
func NewRedisTokenStore(redisClient *redis.Client, ttl time.Duration) TokenStore {
	return &redisTokenStore{
		redisClient: redisClient,
		keyPrefix:   "brickset:userhash:",
		ttl:         ttl,
	}
}

func (s *redisTokenStore) Load(ctx context.Context, username string) (string, bool, error) {
	hash, err := s.redisClient.Get(ctx, s.keyPrefix+username).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil // Nothing saved yet
		}
		return "", false, fmt.Errorf("failed to load user hash for %s: %w", username, err)
	}

	return hash, hash != "", nil
}

func (s *redisTokenStore) Save(ctx context.Context, username, hash string) error {
	err := s.redisClient.Set(ctx, s.keyPrefix+username, hash, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to save user hash for %s: %w", username, err)
	}
	return nil
}

func (s *redisTokenStore) Delete(ctx context.Context, username string) error {
	if err := s.redisClient.Del(ctx, s.keyPrefix+username).Err(); err != nil {
		return fmt.Errorf("failed to delete user hash for %s: %w", username, err)
	}
	return nil
}
