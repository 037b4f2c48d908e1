package booking

import (
	"context"
	"time"

	"servicehub/database/repository"
	"servicehub/models"
	"servicehub/services/notification"

	"go.uber.org/zap"
)

// BookingService defines booking operations and rating aggregation.
type BookingService interface {
	CreateBooking(ctx context.Context, booking models.Booking) (string, error)
	ListBookings(ctx context.Context, email string) ([]models.Booking, error)
	DeleteBooking(ctx context.Context, id string) (models.DeleteResult, error)
	RateBooking(ctx context.Context, id string, input models.RatingInput) (models.UpdateResult, error)
	RecomputeServiceRating(ctx context.Context, serviceID string) (*models.RatingSummary, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        repository.BookingRepository
	ServiceRepo repository.ServiceRepository
	Notifier    notification.RatingNotifier
	Logger      *zap.Logger

	// Now is overridable in tests.
	Now func() time.Time
}

// NewBookingService wires a DefaultBookingService. notifier and logger may be nil.
func NewBookingService(
	repo repository.BookingRepository,
	serviceRepo repository.ServiceRepository,
	notifier notification.RatingNotifier,
	logger *zap.Logger,
) *DefaultBookingService {
	if notifier == nil {
		notifier = notification.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:        repo,
		ServiceRepo: serviceRepo,
		Notifier:    notifier,
		Logger:      logger,
		Now:         time.Now,
	}
}

func (s *DefaultBookingService) notify(ctx context.Context, event models.RatingEvent) {
	event.At = s.Now().UTC()
	if err := s.Notifier.NotifyRating(ctx, event); err != nil {
		s.Logger.Warn("rating event not published",
			zap.String("type", string(event.Type)),
			zap.String("serviceId", event.ServiceID),
			zap.String("bookingId", event.BookingID),
			zap.Error(err))
	}
}
