// Package guard implements the duplicate-submission cooldown on Redis.
//
// Reserving a slot is a single SETNX with the cooldown window as TTL, so
// concurrent submissions for the same email and product race on one atomic
// write and exactly one wins.
package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"brightcover/internal/domain/entities"
	"brightcover/internal/usecase/interfaces"
)

type RedisGuard struct {
	client *redis.Client
	window time.Duration
}

var _ interfaces.ISubmissionGuard = (*RedisGuard)(nil)

func NewRedisGuard(client *redis.Client, window time.Duration) *RedisGuard {
	return &RedisGuard{client: client, window: window}
}

func cooldownKey(email string, product entities.ProductType) string {
	return fmt.Sprintf("cooldown:%s:%s", product, email)
}

// Reserve claims the cooldown slot. It returns false when a submission for
// the same email and product is still inside the window.
func (g *RedisGuard) Reserve(ctx context.Context, email string, product entities.ProductType) (bool, error) {
	ok, err := g.client.SetNX(ctx, cooldownKey(email, product), time.Now().UTC().Format(time.RFC3339), g.window).Result()
	if err != nil {
		return false, fmt.Errorf("failed to reserve cooldown slot: %w", err)
	}
	return ok, nil
}

// Release frees the slot so a failed submission can be retried immediately.
func (g *RedisGuard) Release(ctx context.Context, email string, product entities.ProductType) error {
	if err := g.client.Del(ctx, cooldownKey(email, product)).Err(); err != nil {
		return fmt.Errorf("failed to release cooldown slot: %w", err)
	}
	return nil
}

// DisabledGuard admits every submission. Used when Redis is not configured,
// typically in local development.
type DisabledGuard struct{}

var _ interfaces.ISubmissionGuard = DisabledGuard{}

func (DisabledGuard) Reserve(context.Context, string, entities.ProductType) (bool, error) {
	return true, nil
}

func (DisabledGuard) Release(context.Context, string, entities.ProductType) error {
	return nil
}
