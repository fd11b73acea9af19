package token

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore keeps the pair in redis under a configurable prefix. Meant for
// kiosk and terminal deployments where several client processes share one
// authenticated session.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// NewRedisStore returns a redis-backed store. Prefix defaults to "parkmobile".
func NewRedisStore(client *redis.Client, prefix string, logger *zap.Logger) *RedisStore {
	if prefix == "" {
		prefix = "parkmobile"
	}
	return &RedisStore{client: client, prefix: prefix, logger: logger}
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

// Save writes both keys and verifies the readback.
func (s *RedisStore) Save(ctx context.Context, pair Pair) {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(AccessTokenKey), pair.AccessToken, 0)
	pipe.Set(ctx, s.key(RefreshTokenKey), pair.RefreshToken, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("token: redis persist failed", zap.Error(err))
		return
	}

	stored := s.Load(ctx)
	if stored == nil || *stored != pair {
		s.logger.Warn("token: redis readback verification failed")
	}
}

// Load returns the stored pair, or nil when either key is missing.
func (s *RedisStore) Load(ctx context.Context) *Pair {
	access, err := s.client.Get(ctx, s.key(AccessTokenKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("token: redis read failed", zap.Error(err))
		}
		return nil
	}
	refresh, err := s.client.Get(ctx, s.key(RefreshTokenKey)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("token: redis read failed", zap.Error(err))
		}
		return nil
	}
	if access == "" || refresh == "" {
		return nil
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}
}

// Clear deletes both keys. Missing keys are not an error.
func (s *RedisStore) Clear(ctx context.Context) {
	if err := s.client.Del(ctx, s.key(AccessTokenKey), s.key(RefreshTokenKey)).Err(); err != nil {
		s.logger.Warn("token: redis clear failed", zap.Error(err))
	}
}
