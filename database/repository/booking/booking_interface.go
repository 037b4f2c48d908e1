package bookingRepo

import (
	"context"

	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRatings is the projection of a service's bookings used for
// aggregation. Ratings holds only the bookings that carry a numeric rating.
type ServiceRatings struct {
	TotalBookings int
	Ratings       []float64
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts the booking with its extra attributes and returns the generated id.
	Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error)
	// List returns all bookings, or only those whose userEmail equals email when it is non-empty.
	List(ctx context.Context, email string) ([]models.Booking, error)
	// Delete removes the booking with the id.
	Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
	// SetRating sets the rating field of one booking.
	SetRating(ctx context.Context, id primitive.ObjectID, rating float64) (models.UpdateResult, error)
	// RatingsForService reads the ratings of every booking referencing serviceID.
	RatingsForService(ctx context.Context, serviceID string) (ServiceRatings, error)
	// EnsureIndexes creates the indexes the queries above rely on.
	EnsureIndexes(ctx context.Context) error
}
