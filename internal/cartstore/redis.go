// Package cartstore keeps session carts in Redis between requests.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/tilequote/internal/domain"
	"github.com/nikolayk812/tilequote/internal/port"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 12 * time.Hour

	maxUpdateAttempts = 100
)

// ErrUpdateConflict is returned when a cart kept changing under every update attempt.
var ErrUpdateConflict = errors.New("cart update conflict")

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ port.CartStore = (*RedisStore)(nil)

// NewRedisStore returns a store whose carts expire after ttl without a save.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) Load(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is empty")
	}

	return getCart(ctx, s.client, cartKey(sessionID))
}

// Save stores the cart and restarts its expiry. An empty cart is deleted instead.
func (s *RedisStore) Save(ctx context.Context, sessionID string, cart *domain.Cart) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}
	if cart == nil || cart.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Update loads the cart, applies fn and saves the result atomically.
// A concurrent write to the same cart restarts the whole cycle, fn included.
func (s *RedisStore) Update(ctx context.Context, sessionID string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID is empty")
	}

	key := cartKey(sessionID)

	var updated *domain.Cart
	txf := func(tx *redis.Tx) error {
		cart, err := getCart(ctx, tx, key)
		if err != nil {
			return err
		}

		if err := fn(cart); err != nil {
			return err
		}

		var data []byte
		if !cart.IsEmpty() {
			data, err = json.Marshal(cart)
			if err != nil {
				return fmt.Errorf("marshal cart failed: %w", err)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if data == nil {
				pipe.Del(ctx, key)
				return nil
			}
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return fmt.Errorf("redis exec failed: %w", err)
		}

		updated = cart
		return nil
	}

	for range maxUpdateAttempts {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return updated, nil
	}

	return nil, ErrUpdateConflict
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("sessionID is empty")
	}

	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func getCart(ctx context.Context, c redis.Cmdable, key string) (*domain.Cart, error) {
	data, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	cart := domain.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	return cart, nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:%s", sessionID)
}
