package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// redisCommander is the subset of *redis.Client used by the store.
type redisCommander interface {
	MGet(ctx context.Context, keys ...string) *redis.SliceCmd
	MSet(ctx context.Context, values ...any) *redis.StatusCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisKeyValueStore implements [KeyValueStore] using go-redis/v9.
// SetMany issues a single MSET, which redis applies atomically.
type RedisKeyValueStore struct {
	client redisCommander
}

// NewRedisKeyValueStore connects to redisURL and checks the connection.
func NewRedisKeyValueStore(ctx context.Context, redisURL string) (*RedisKeyValueStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	store := &RedisKeyValueStore{client: redis.NewClient(opts)}
	if err = store.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return store, nil
}

func (s *RedisKeyValueStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisKeyValueStore) GetMany(ctx context.Context, names ...string) (map[string][]byte, error) {
	values, err := s.client.MGet(ctx, names...).Result()
	if err != nil {
		return nil, err
	}

	found := make(map[string][]byte, len(names))
	for i, value := range values {
		if i >= len(names) {
			break
		}
		switch v := value.(type) {
		case string:
			found[names[i]] = []byte(v)
		case []byte:
			found[names[i]] = v
		case nil:
			// key is not set
		default:
			return nil, fmt.Errorf("%w: unexpected redis value type %T", ErrCorruptedRecord, value)
		}
	}

	return found, nil
}

func (s *RedisKeyValueStore) SetMany(ctx context.Context, records map[string][]byte) error {
	if len(records) == 0 {
		return nil
	}

	pairs := make([]any, 0, len(records)*2)
	for name, value := range records {
		pairs = append(pairs, name, value)
	}

	return s.client.MSet(ctx, pairs...).Err()
}

func (s *RedisKeyValueStore) Close() error {
	return s.client.Close()
}
