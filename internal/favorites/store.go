package favorites

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store persists a customer's starred favorites per location.
type Store interface {
	Favorites(ctx context.Context, customerRef, locationID string) (map[string]bool, error)
	SetFavorite(ctx context.Context, customerRef, locationID, resourceID string, starred bool) error
}

// RedisStore keeps favorites in a Redis set per (customer, location).
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func favoritesKey(customerRef, locationID string) string {
	return fmt.Sprintf("favorites:%s:%s", customerRef, locationID)
}

func (s *RedisStore) Favorites(ctx context.Context, customerRef, locationID string) (map[string]bool, error) {
	members, err := s.client.SMembers(ctx, favoritesKey(customerRef, locationID)).Result()
	if err != nil {
		return nil, fmt.Errorf("read favorites failed: %w", err)
	}

	starred := make(map[string]bool, len(members))
	for _, id := range members {
		starred[id] = true
	}
	return starred, nil
}

func (s *RedisStore) SetFavorite(ctx context.Context, customerRef, locationID, resourceID string, starred bool) error {
	key := favoritesKey(customerRef, locationID)

	var err error
	if starred {
		err = s.client.SAdd(ctx, key, resourceID).Err()
	} else {
		err = s.client.SRem(ctx, key, resourceID).Err()
	}
	if err != nil {
		return fmt.Errorf("write favorite failed: %w", err)
	}
	return nil
}
