package infra

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JordanPiper315/techNotesBackend/internal/constants"
)

// RedisTokenStore implements domain.TokenStore on a redis denylist. Revoked
// tokens are stored with a TTL matching their remaining validity, so the set
// cleans itself up.
type RedisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to shadow
		return nil
	}
	return s.rdb.Set(ctx, constants.RedisRevokedTokenPrefix+token, "1", ttl).Err()
}

func (s *RedisTokenStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, constants.RedisRevokedTokenPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
