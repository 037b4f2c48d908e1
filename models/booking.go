// File: models/booking.go
package models

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a customer's reservation of a service. Only the core fields are
// typed; anything else the client sent is kept in Extra and stored inline.
type Booking struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	ServiceID string                 `bson:"serviceId,omitempty" json:"serviceId,omitempty"` // not checked against services
	UserEmail string                 `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	Rating    *float64               `bson:"rating,omitempty" json:"rating,omitempty"` // nil until rated
	Extra     map[string]interface{} `bson:",inline" json:"-"`
}

// IsRated reports whether the booking carries a rating.
func (b Booking) IsRated() bool {
	return b.Rating != nil
}

// MarshalJSON flattens Extra into the top-level object.
func (b Booking) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(b.Extra)+4)
	for k, v := range b.Extra {
		out[k] = v
	}
	if !b.ID.IsZero() {
		out["_id"] = b.ID
	}
	if b.ServiceID != "" {
		out["serviceId"] = b.ServiceID
	}
	if b.UserEmail != "" {
		out["userEmail"] = b.UserEmail
	}
	if b.Rating != nil {
		out["rating"] = *b.Rating
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the core fields and keeps every other key in Extra.
// A client-supplied _id is dropped; identifiers come from the store.
func (b *Booking) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = Booking{}
	for key, value := range raw {
		switch key {
		case "_id":
		case "serviceId":
			if err := json.Unmarshal(value, &b.ServiceID); err != nil {
				return fmt.Errorf("serviceId must be a string")
			}
		case "userEmail":
			if err := json.Unmarshal(value, &b.UserEmail); err != nil {
				return fmt.Errorf("userEmail must be a string")
			}
		case "rating":
			if err := json.Unmarshal(value, &b.Rating); err != nil {
				return fmt.Errorf("rating must be a number")
			}
		default:
			var v interface{}
			if err := json.Unmarshal(value, &v); err != nil {
				return err
			}
			if b.Extra == nil {
				b.Extra = make(map[string]interface{})
			}
			b.Extra[key] = v
		}
	}
	return nil
}

// UnmarshalBSON decodes bookings written by any client. A rating that is not
// a usable number leaves the booking unrated, and a serviceId stored as an
// ObjectID reads back as hex. Core keys of an unexpected type are kept in Extra.
func (b *Booking) UnmarshalBSON(data []byte) error {
	var doc map[string]interface{}
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}

	*b = Booking{}
	for key, value := range doc {
		switch key {
		case "_id":
			if oid, ok := value.(primitive.ObjectID); ok {
				b.ID = oid
				continue
			}
		case "serviceId":
			switch v := value.(type) {
			case string:
				b.ServiceID = v
				continue
			case primitive.ObjectID:
				b.ServiceID = v.Hex()
				continue
			}
		case "userEmail":
			if s, ok := value.(string); ok {
				b.UserEmail = s
				continue
			}
		case "rating":
			if r, ok := StoredRating(bson.Raw(data).Lookup("rating")); ok {
				b.Rating = &r
			}
			continue
		}
		if b.Extra == nil {
			b.Extra = make(map[string]interface{})
		}
		b.Extra[key] = value
	}
	return nil
}
