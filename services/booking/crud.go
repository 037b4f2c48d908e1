package booking

import (
	"context"

	"servicehub/models"
	"servicehub/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreateBooking stores the booking as sent. No field is required.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, booking models.Booking) (string, error) {
	if booking.Rating != nil {
		if _, err := utils.ValidateRating(booking.Rating); err != nil {
			return "", err
		}
	}
	booking.ID = primitive.NilObjectID

	id, err := s.Repo.Create(ctx, &booking)
	if err != nil {
		return "", utils.NewStoreUnavailable("Error saving booking", err)
	}
	return id.Hex(), nil
}

// ListBookings returns the bookings of email, or every booking when email is empty.
func (s *DefaultBookingService) ListBookings(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := s.Repo.List(ctx, email)
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error fetching bookings", err)
	}
	return bookings, nil
}

// DeleteBooking removes the booking. Deleting an unknown id reports 0 deleted.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id, "booking")
	if err != nil {
		return models.DeleteResult{}, err
	}
	result, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return models.DeleteResult{}, utils.NewStoreUnavailable("Error deleting booking", err)
	}
	return result, nil
}
