package store

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"

	"github.com/natnael-haile/hireflow/internal/domain/contract"
)

// sessionTokenKey is the fixed key the live session token lives under, the
// analog of the browser local-storage key. One live token per store.
const sessionTokenKey = "hireflow.auth.token"

// RedisTokenStore persists the session token in Redis so it survives process
// restarts and is shared by every process pointed at the same instance.
type RedisTokenStore struct {
	rdb *redis.Client
}

var _ contract.ITokenStore = (*RedisTokenStore)(nil)

func NewRedisTokenStore(rdb *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{rdb: rdb}
}

func (s *RedisTokenStore) Get(ctx context.Context) (string, error) {
	token, err := s.rdb.Get(ctx, sessionTokenKey).Result()
	if err != nil {
		if err == redis.Nil {
			return "", contract.ErrTokenNotFound
		}
		return "", err
	}
	return token, nil
}

func (s *RedisTokenStore) Set(ctx context.Context, token string) error {
	return s.rdb.Set(ctx, sessionTokenKey, token, 0).Err()
}

func (s *RedisTokenStore) Delete(ctx context.Context) error {
	return s.rdb.Del(ctx, sessionTokenKey).Err()
}

// NewRedisFromURL builds a Redis client from a REDIS_URL string.
func NewRedisFromURL(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

// MemoryTokenStore holds the session token in process memory. Used when no
// REDIS_URL is configured and throughout the tests.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ contract.ITokenStore = (*MemoryTokenStore)(nil)

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Get(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set {
		return "", contract.ErrTokenNotFound
	}
	return s.token, nil
}

func (s *MemoryTokenStore) Set(_ context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.set = true
	s.mu.Unlock()
	return nil
}

func (s *MemoryTokenStore) Delete(context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.set = false
	s.mu.Unlock()
	return nil
}
