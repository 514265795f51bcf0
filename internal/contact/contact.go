// Package contact stores messages submitted through the contact form.
package contact

import (
	"context"
	"fmt"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Message struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Phone   string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Message string             `json:"message" bson:"message"`
}

type NewMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
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

func (c *Conf) CreateMessage(ctx context.Context, nm NewMessage) (primitive.ObjectID, error) {
	id, err := c.store.Insert(ctx, mongodb.CollectionContactMessage, Message{
		Name:    nm.Name,
		Email:   nm.Email,
		Phone:   nm.Phone,
		Message: nm.Message,
	})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert contact message: %w", err)
	}
	return id, nil
}
