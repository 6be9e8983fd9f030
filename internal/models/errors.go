package models

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound means an identifier did not resolve to an existing record.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID means a client-supplied identifier string is not a valid
	// ObjectID and was rejected before reaching the database.
	ErrInvalidID = errors.New("invalid object id")
)

// ParseObjectID converts a client-supplied hex string into an ObjectID,
// failing with ErrInvalidID on malformed input.
func ParseObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, pkgerrors.Wrapf(ErrInvalidID, "%q: %v", hex, err)
	}
	return id, nil
}
