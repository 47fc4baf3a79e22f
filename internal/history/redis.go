package history

import (
	"context"
	"fmt"
	"github.com/go-redis/redis/v8"
	"strings"
)

const (
	defaultKey = "cityweather:recent"
	defaultMax = 20
)

type StoreOption func(*RedisStore)

// RedisStore keeps the most recently searched cities in a capped redis list,
// newest first and without duplicates.
type RedisStore struct {
	rc  *redis.Client
	key string
	max int64
}

func KeyOption(key string) StoreOption {
	return func(s *RedisStore) {
		s.key = key
	}
}

func MaxOption(max int) StoreOption {
	return func(s *RedisStore) {
		s.max = int64(max)
	}
}

func NewRedisStore(rc *redis.Client, opts ...StoreOption) *RedisStore {
	s := &RedisStore{rc: rc, key: defaultKey, max: defaultMax}
	for _, opt := range opts {
		opt(s)
	}

	if rc == nil {
		panic("Missing redis client in history store")
	}
	if s.max <= 0 {
		s.max = defaultMax
	}
	return s
}

func (s *RedisStore) Record(ctx context.Context, city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil
	}
	_, err := s.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LRem(ctx, s.key, 0, city)
		pipe.LPush(ctx, s.key, city)
		pipe.LTrim(ctx, s.key, 0, s.max-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("error recording search for %v: %w", city, err)
	}
	return nil
}

// Recent returns up to n cities, newest first.
func (s *RedisStore) Recent(ctx context.Context, n int) ([]string, error) {
	if n <= 0 {
		return []string{}, nil
	}
	if int64(n) > s.max {
		n = int(s.max)
	}
	cities, err := s.rc.LRange(ctx, s.key, 0, int64(n)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("error reading recent searches: %w", err)
	}
	return cities, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rc.Ping(ctx).Err()
}
