// Package bookings stores appointment requests for in-person services.
package bookings

import (
	"context"
	"fmt"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Booking struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	Service       string             `json:"service" bson:"service"`
	PreferredDate string             `json:"preferred_date,omitempty" bson:"preferred_date,omitempty"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
}

// NewBooking is the request payload. Service is free text by convention
// (crochet, braids, wig-install, other). PreferredDate stays free text so
// customers can write "next Saturday morning".
type NewBooking struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Service       string `json:"service" validate:"required"`
	PreferredDate string `json:"preferred_date"`
	Notes         string `json:"notes"`
}

func (nb NewBooking) Booking() Booking {
	return Booking{
		Name:          nb.Name,
		Phone:         nb.Phone,
		Service:       nb.Service,
		PreferredDate: nb.PreferredDate,
		Notes:         nb.Notes,
	}
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

func (c *Conf) CreateBooking(ctx context.Context, nb NewBooking) (primitive.ObjectID, error) {
	id, err := c.store.Insert(ctx, mongodb.CollectionBooking, nb.Booking())
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert booking: %w", err)
	}
	return id, nil
}
