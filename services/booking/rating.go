package booking

import (
	"context"

	"servicehub/models"
	"servicehub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RateBooking sets the rating of one booking. A missing rating is rejected
// before any write.
func (s *DefaultBookingService) RateBooking(ctx context.Context, id string, input models.RatingInput) (models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id, "booking")
	if err != nil {
		return models.UpdateResult{}, err
	}
	rating, err := utils.ValidateRating(input.Rating)
	if err != nil {
		return models.UpdateResult{}, err
	}

	result, err := s.Repo.SetRating(ctx, oid, rating)
	if err != nil {
		return models.UpdateResult{}, utils.NewStoreUnavailable("Error rating booking", err)
	}
	if result.MatchedCount > 0 {
		s.notify(ctx, models.RatingEvent{
			Type:      models.RatingEventBookingRated,
			BookingID: oid.Hex(),
			Rating:    rating,
		})
	}
	return result, nil
}

// meanRating averages the rated bookings. With no rated bookings the divisor
// is 1, so the result is 0.
func meanRating(ratings []float64) float64 {
	var total float64
	for _, r := range ratings {
		total += r
	}
	divisor := len(ratings)
	if divisor == 0 {
		divisor = 1
	}
	return total / float64(divisor)
}

// RecomputeServiceRating derives the service rating from its bookings and
// writes it back. Bookings read here and the service write are not atomic:
// a booking rated in between is picked up by the next recompute.
func (s *DefaultBookingService) RecomputeServiceRating(ctx context.Context, serviceID string) (*models.RatingSummary, error) {
	oid, err := utils.ParseObjectID(serviceID, "service")
	if err != nil {
		return nil, err
	}
	// Bookings reference services by lowercase hex.
	serviceID = oid.Hex()

	ratings, err := s.Repo.RatingsForService(ctx, serviceID)
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error fetching bookings", err)
	}
	if ratings.TotalBookings == 0 {
		return nil, utils.NewInvalidInput("No bookings found for this service")
	}

	mean := meanRating(ratings.Ratings)
	result, err := s.ServiceRepo.UpdateFields(ctx, oid, bson.M{"rating": mean})
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error updating service rating", err)
	}
	if result.MatchedCount == 0 {
		return nil, utils.NewNotFound("Service not found")
	}

	s.Logger.Info("service rating recomputed",
		zap.String("serviceId", serviceID),
		zap.Float64("rating", mean),
		zap.Int("ratedBookings", len(ratings.Ratings)),
		zap.Int("totalBookings", ratings.TotalBookings))
	s.notify(ctx, models.RatingEvent{
		Type:      models.RatingEventServiceRecomputed,
		ServiceID: serviceID,
		Rating:    mean,
	})

	return &models.RatingSummary{
		ServiceID:     serviceID,
		Rating:        mean,
		RatedBookings: len(ratings.Ratings),
		TotalBookings: ratings.TotalBookings,
	}, nil
}
