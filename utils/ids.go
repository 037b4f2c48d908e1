package utils

import (
	"math"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ParseObjectID validates a hex store key. A malformed key is InvalidInput,
// never a store call.
func ParseObjectID(id, entity string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, NewInvalidInput("Invalid "+entity+" id",
			FieldError{Field: "id", Error: "must be a 24 character hex string"})
	}
	return oid, nil
}

// ValidateRating requires a present, finite, non-negative rating.
func ValidateRating(rating *float64) (float64, error) {
	if rating == nil {
		return 0, NewInvalidInput("Rating is required", FieldError{Field: "rating", Error: "is required"})
	}
	r := *rating
	if math.IsNaN(r) || math.IsInf(r, 0) || r < 0 {
		return 0, NewInvalidInput("Rating must be a non-negative number", FieldError{Field: "rating", Error: "must be a non-negative number"})
	}
	return r, nil
}
