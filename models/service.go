// File: models/service.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service is a listing offered by a provider.
type Service struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	ServiceName     string             `bson:"service_name" json:"service_name"`
	Category        string             `bson:"category,omitempty" json:"category,omitempty"`
	Price           Number             `bson:"price" json:"price"`
	Currency        string             `bson:"currency,omitempty" json:"currency,omitempty"` // display hint only
	Description     string             `bson:"description" json:"description"`
	Image           string             `bson:"image" json:"image"` // URI
	ProviderName    string             `bson:"provider_name" json:"provider_name"`
	ProviderEmail   string             `bson:"provider_email" json:"provider_email"`
	ProviderContact string             `bson:"provider_contact,omitempty" json:"provider_contact,omitempty"`
	Duration        string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Rating          Number             `bson:"rating" json:"rating"` // written only by rating operations
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// ServiceInput is the body accepted when a provider lists a new service.
type ServiceInput struct {
	ServiceName     string `json:"service_name" validate:"required"`
	Category        string `json:"category"`
	Price           Number `json:"price" validate:"required,gt=0"`
	Currency        string `json:"currency"`
	Description     string `json:"description" validate:"required"`
	Image           string `json:"image" validate:"required"`
	ProviderName    string `json:"provider_name" validate:"required"`
	ProviderEmail   string `json:"provider_email" validate:"required"`
	Email           string `json:"email" validate:"-"` // legacy alias of provider_email
	ProviderContact string `json:"provider_contact" validate:"required"`
	Duration        string `json:"duration"`
}

// Normalize folds legacy field names into their canonical ones.
func (in *ServiceInput) Normalize() {
	if in.ProviderEmail == "" {
		in.ProviderEmail = in.Email
	}
}

// ToService builds the document persisted on creation.
func (in ServiceInput) ToService(now time.Time) *Service {
	return &Service{
		ServiceName:     in.ServiceName,
		Category:        in.Category,
		Price:           in.Price,
		Currency:        in.Currency,
		Description:     in.Description,
		Image:           in.Image,
		ProviderName:    in.ProviderName,
		ProviderEmail:   in.ProviderEmail,
		ProviderContact: in.ProviderContact,
		Duration:        in.Duration,
		Rating:          0,
		CreatedAt:       now,
	}
}

// ServiceUpdate is a merge patch: nil fields are left untouched.
// Identity, rating and creation time are not patchable here.
type ServiceUpdate struct {
	ServiceName     *string `json:"service_name"`
	Category        *string `json:"category"`
	Price           *Number `json:"price" validate:"omitnil,gt=0"`
	Currency        *string `json:"currency"`
	Description     *string `json:"description"`
	Image           *string `json:"image"`
	ProviderName    *string `json:"provider_name"`
	ProviderContact *string `json:"provider_contact"`
	Duration        *string `json:"duration"`
}

// SetDocument returns the $set payload for the supplied fields.
func (u ServiceUpdate) SetDocument() bson.M {
	set := bson.M{}
	if u.ServiceName != nil {
		set["service_name"] = *u.ServiceName
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Price != nil {
		set["price"] = u.Price.Float64()
	}
	if u.Currency != nil {
		set["currency"] = *u.Currency
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Image != nil {
		set["image"] = *u.Image
	}
	if u.ProviderName != nil {
		set["provider_name"] = *u.ProviderName
	}
	if u.ProviderContact != nil {
		set["provider_contact"] = *u.ProviderContact
	}
	if u.Duration != nil {
		set["duration"] = *u.Duration
	}
	return set
}

// RatingInput carries a caller-supplied rating. Rating is nil when the
// body did not include one.
type RatingInput struct {
	Rating *float64 `json:"rating"`
}
