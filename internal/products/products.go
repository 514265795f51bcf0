package products

import (
	"context"
	"fmt"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson"
)

type Conf struct {
	store mongodb.Store
}

func NewConf(store mongodb.Store) (Conf, error) {
	if store == nil {
		return Conf{}, fmt.Errorf("store is nil")
	}
	return Conf{store: store}, nil
}

// InsertProduct persists a validated payload and returns the stored product
// with its assigned id.
func (c *Conf) InsertProduct(ctx context.Context, np NewProduct) (Product, error) {
	p := np.Product()
	id, err := c.store.Insert(ctx, mongodb.CollectionProduct, p)
	if err != nil {
		return Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	p.ID = id
	return p, nil
}

// GetProductByID fetches one product. A malformed id fails with
// mongodb.ErrInvalidID before any store call; an absent one with ErrNotFound.
func (c *Conf) GetProductByID(ctx context.Context, productID string) (Product, error) {
	id, err := mongodb.ParseID(productID)
	if err != nil {
		return Product{}, err
	}
	var p Product
	if err := c.store.FindOne(ctx, mongodb.CollectionProduct, id, &p); err != nil {
		return Product{}, err
	}
	return p, nil
}

// ListProducts returns products in insertion order, optionally narrowed by
// category and featured. Both filters combine with AND semantics.
func (c *Conf) ListProducts(ctx context.Context, category string, featured *bool) ([]Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	if featured != nil {
		filter["featured"] = *featured
	}

	list := []Product{}
	if err := c.store.FindMany(ctx, mongodb.CollectionProduct, filter, 0, &list); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return list, nil
}

// UpdateProduct performs a full-field replace of the stored document. Fields
// absent from np fall back to their defaults, not to their previous values.
func (c *Conf) UpdateProduct(ctx context.Context, productID string, np NewProduct) error {
	id, err := mongodb.ParseID(productID)
	if err != nil {
		return err
	}
	return c.store.Replace(ctx, mongodb.CollectionProduct, id, np.Product())
}

// DeleteProduct removes one product. Deleting an already-deleted id yields
// ErrNotFound.
func (c *Conf) DeleteProduct(ctx context.Context, productID string) error {
	id, err := mongodb.ParseID(productID)
	if err != nil {
		return err
	}
	return c.store.Delete(ctx, mongodb.CollectionProduct, id)
}
