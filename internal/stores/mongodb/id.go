package mongodb

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID reports a malformed identifier string. It is detected before
// any store round-trip and must not be confused with ErrNotFound.
var ErrInvalidID = errors.New("invalid id")

// ParseID converts a client-supplied identifier string into the native
// ObjectID form. Anything but 24 hex characters fails with ErrInvalidID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
