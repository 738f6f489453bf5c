package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"buildsmart_backend/internal/engine/domain"
)

// StateCache is a Redis write-through cache for conversation state. The
// database remains the source of truth; a cache miss or Redis outage falls
// back to the repository.
type StateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStateCache creates a conversation state cache.
func NewStateCache(client *redis.Client, ttl time.Duration) *StateCache {
	return &StateCache{client: client, ttl: ttl}
}

func cacheKey(id uuid.UUID) string {
	return "conversation:state:" + id.String()
}

// Get returns the cached state for a conversation. The boolean is false on a
// cache miss.
func (c *StateCache) Get(ctx context.Context, id uuid.UUID) (domain.State, bool, error) {
	data, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.State{}, false, nil
		}
		return domain.State{}, false, fmt.Errorf("cache get: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.State{}, false, fmt.Errorf("unmarshal cached state: %w", err)
	}
	return state, true, nil
}

// Set stores the state for a conversation with the configured TTL.
func (c *StateCache) Set(ctx context.Context, id uuid.UUID, state domain.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(id), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete evicts a conversation from the cache.
func (c *StateCache) Delete(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}
