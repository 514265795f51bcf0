// Package faqs stores the question/answer entries shown on the site.
package faqs

import (
	"context"
	"fmt"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FAQ struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Question string             `json:"question" bson:"question"`
	Answer   string             `json:"answer" bson:"answer"`
}

type NewFAQ struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

type Conf struct {
	store mongodb.Store
}

func NewConf(store mongodb.Store) (Conf, error) {
	if store == nil {
		return Conf{}, fmt.Errorf("store is nil")
	}
	return Conf{store: store}, nil
}

func (c *Conf) CreateFAQ(ctx context.Context, nf NewFAQ) (primitive.ObjectID, error) {
	id, err := c.store.Insert(ctx, mongodb.CollectionFAQ, FAQ{Question: nf.Question, Answer: nf.Answer})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert faq: %w", err)
	}
	return id, nil
}

// ListFAQs returns every entry in insertion order, unrestricted.
func (c *Conf) ListFAQs(ctx context.Context) ([]FAQ, error) {
	list := []FAQ{}
	if err := c.store.FindMany(ctx, mongodb.CollectionFAQ, bson.M{}, 0, &list); err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}
	return list, nil
}
