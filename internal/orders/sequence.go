package orders

import (
	"context"
	"fmt"

	"github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/redis"
)

// orderNumberFormat yields numbers like ORD-2026-00042.
const orderNumberFormat = "ORD-%d-%05d"

type counterClient interface {
	Incr(ctx context.Context, key string) (int64, error)
	CounterKey(name string) string
}

type redisSequence struct {
	client counterClient
}

// NewSequenceGenerator builds the Redis-backed order number generator. Each
// year gets its own counter, so numbers restart at 1 every January.
func NewSequenceGenerator(client *redis.Client) SequenceGenerator {
	return &redisSequence{client: client}
}

func (s *redisSequence) Next(ctx context.Context, year int) (string, error) {
	if year <= 0 {
		return "", errors.New(errors.CodeValidation, fmt.Sprintf("invalid order year %d", year))
	}
	key := s.client.CounterKey(fmt.Sprintf("orders:%d", year))
	n, err := s.client.Incr(ctx, key)
	if err != nil {
		return "", errors.Wrap(errors.CodeDependency, err, "incrementing order sequence")
	}
	return fmt.Sprintf(orderNumberFormat, year, n), nil
}
