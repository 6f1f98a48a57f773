package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/techstore/storefront-backend/internal/pricing"
	pkgerrors "github.com/techstore/storefront-backend/pkg/errors"
	"github.com/techstore/storefront-backend/pkg/redis"
	"github.com/techstore/storefront-backend/pkg/types"
)

type kvClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(userID string) string
}

// storedLine is the wire form a cart line takes inside the Redis snapshot.
type storedLine struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Slug      string          `json:"slug"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Variant   *types.Variant  `json:"variant,omitempty"`
}

type redisStore struct {
	client kvClient
	ttl    time.Duration
}

// NewStore builds the Redis-backed cart snapshot store. Snapshots expire
// after ttl of inactivity; every save refreshes the expiry.
func NewStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Load(ctx context.Context, userID uuid.UUID) ([]pricing.LineItem, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(userID.String()))
	if err != nil {
		if redis.IsNil(err) {
			return []pricing.LineItem{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading cart snapshot")
	}

	var lines []storedLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decoding cart snapshot")
	}

	items := make([]pricing.LineItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, pricing.LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Slug:      line.Slug,
			ImageURL:  line.ImageURL,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Variant:   line.Variant,
		})
	}
	return items, nil
}

func (s *redisStore) Save(ctx context.Context, userID uuid.UUID, items []pricing.LineItem) error {
	if len(items) == 0 {
		return s.Clear(ctx, userID)
	}

	lines := make([]storedLine, 0, len(items))
	for _, li := range items {
		lines = append(lines, storedLine{
			ProductID: li.ProductID,
			Name:      li.Name,
			Slug:      li.Slug,
			ImageURL:  li.ImageURL,
			UnitPrice: li.UnitPrice,
			Quantity:  li.Quantity,
			Variant:   li.Variant,
		})
	}

	payload, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding cart snapshot")
	}
	if err := s.client.Set(ctx, s.client.CartKey(userID.String()), string(payload), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving cart snapshot")
	}
	return nil
}

func (s *redisStore) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.client.Del(ctx, s.client.CartKey(userID.String())); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clearing cart snapshot")
	}
	return nil
}
