package orders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is a line item embedded in an order. ProductID is a plain string;
// no referential check against the product collection happens at write time.
type CartItem struct {
	ProductID string `json:"product_id" bson:"product_id"`
	Quantity  int    `json:"quantity" bson:"quantity"`
}

type OrderCustomer struct {
	Name  string `json:"name" bson:"name" validate:"required"`
	Email string `json:"email" bson:"email" validate:"required,email"`
	Phone string `json:"phone" bson:"phone" validate:"required"`
}

type OrderAddress struct {
	Line1      string `json:"line1" bson:"line1" validate:"required"`
	Line2      string `json:"line2,omitempty" bson:"line2,omitempty"`
	City       string `json:"city" bson:"city" validate:"required"`
	State      string `json:"state,omitempty" bson:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty" bson:"postal_code,omitempty"`
	Country    string `json:"country" bson:"country"`
}

// Order is the stored form. Status and payment_provider are conventions
// (pending/paid/failed/fulfilled, stripe/paystack), accepted as free text.
type Order struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Items           []CartItem         `json:"items" bson:"items"`
	Amount          float64            `json:"amount" bson:"amount"`
	Currency        string             `json:"currency" bson:"currency"`
	PaymentProvider string             `json:"payment_provider" bson:"payment_provider"`
	PaymentID       string             `json:"payment_id,omitempty" bson:"payment_id,omitempty"`
	Status          string             `json:"status" bson:"status"`
	Customer        OrderCustomer      `json:"customer" bson:"customer"`
	Address         OrderAddress       `json:"address" bson:"address"`
	DeliveryOption  string             `json:"delivery_option" bson:"delivery_option"`
	CreatedAt       *time.Time         `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// NewCartItem carries the requested quantity as a pointer so an absent value
// defaults to 1 while an explicit 0 still fails validation.
type NewCartItem struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

type NewOrder struct {
	Items           []NewCartItem `json:"items" validate:"required,dive"`
	Amount          *float64      `json:"amount" validate:"required,gte=0"`
	Currency        string        `json:"currency"`
	PaymentProvider string        `json:"payment_provider" validate:"required"`
	PaymentID       string        `json:"payment_id"`
	Status          string        `json:"status"`
	Customer        OrderCustomer `json:"customer"`
	Address         OrderAddress  `json:"address"`
	DeliveryOption  string        `json:"delivery_option"`
	CreatedAt       *time.Time    `json:"created_at"`
}

// Order converts the payload into its stored form with defaults: currency
// NGN, status pending, standard delivery, country NG, item quantity 1.
func (no NewOrder) Order() Order {
	o := Order{
		Items:           make([]CartItem, 0, len(no.Items)),
		Amount:          *no.Amount,
		Currency:        no.Currency,
		PaymentProvider: no.PaymentProvider,
		PaymentID:       no.PaymentID,
		Status:          no.Status,
		Customer:        no.Customer,
		Address:         no.Address,
		DeliveryOption:  no.DeliveryOption,
		CreatedAt:       no.CreatedAt,
	}
	for _, it := range no.Items {
		qty := 1
		if it.Quantity != nil {
			qty = *it.Quantity
		}
		o.Items = append(o.Items, CartItem{ProductID: it.ProductID, Quantity: qty})
	}
	if o.Currency == "" {
		o.Currency = "NGN"
	}
	if o.Status == "" {
		o.Status = "pending"
	}
	if o.DeliveryOption == "" {
		o.DeliveryOption = "standard"
	}
	if o.Address.Country == "" {
		o.Address.Country = "NG"
	}
	return o
}
