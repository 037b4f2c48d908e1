package serviceRepo

import (
	"context"

	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository defines methods for service data access.
type ServiceRepository interface {
	// GetAll returns every service in store order.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetTopRated returns at most limit services sorted by rating, highest first.
	GetTopRated(ctx context.Context, limit int64) ([]models.Service, error)
	// GetByID returns database.ErrNotFound when no service has the id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error)
	// GetByProviderEmail matches provider_email exactly.
	GetByProviderEmail(ctx context.Context, email string) ([]models.Service, error)
	// Create inserts a service and returns the generated id.
	Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error)
	// UpdateFields applies a $set of fields to the service with the id.
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error)
	// Delete removes the service with the id.
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	// EnsureIndexes creates the indexes the queries above rely on.
	EnsureIndexes(ctx context.Context) error
}
