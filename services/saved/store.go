package saved

import (
	"context"
	"errors"
	"sync"

	"github.com/go-redis/redis/v8"
)

// RedisSlotStore persists saved-set slots in Redis, one key per device.
type RedisSlotStore struct {
	Client *redis.Client
}

func NewRedisSlotStore(client *redis.Client) *RedisSlotStore {
	return &RedisSlotStore{Client: client}
}

func (s *RedisSlotStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisSlotStore) Write(ctx context.Context, key string, data []byte) error {
	// Saved sets are durable; no expiry.
	return s.Client.Set(ctx, key, data, 0).Err()
}

// MemorySlotStore is an in-process SlotStore used by tests.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

func (s *MemorySlotStore) Read(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemorySlotStore) Write(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]byte, len(data))
	copy(out, data)
	s.slots[key] = out
	return nil
}
