package orders

import (
	"context"
	"fmt"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultListLimit caps order listings when the caller gives no limit.
const DefaultListLimit = 50

type Conf struct {
	store mongodb.Store
}

func NewConf(store mongodb.Store) (Conf, error) {
	if store == nil {
		return Conf{}, fmt.Errorf("store is nil")
	}
	return Conf{store: store}, nil
}

// CreateOrder persists a validated order and returns its assigned id.
func (c *Conf) CreateOrder(ctx context.Context, no NewOrder) (primitive.ObjectID, error) {
	id, err := c.store.Insert(ctx, mongodb.CollectionOrder, no.Order())
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert order: %w", err)
	}
	return id, nil
}

// ListOrders returns up to limit orders in insertion order. A limit <= 0
// falls back to DefaultListLimit.
func (c *Conf) ListOrders(ctx context.Context, limit int64) ([]Order, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	list := []Order{}
	if err := c.store.FindMany(ctx, mongodb.CollectionOrder, bson.M{}, limit, &list); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return list, nil
}
