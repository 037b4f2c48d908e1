package memory

import (
	"context"
	"math"
	"sync"

	bookingRepo "servicehub/database/repository/booking"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingRepository is an in-memory booking repository. Iteration follows
// insertion order.
type BookingRepository struct {
	sync.RWMutex
	order []primitive.ObjectID
	data  map[primitive.ObjectID]models.Booking
}

// NewBookingRepository creates a new memory booking repository.
func NewBookingRepository() *BookingRepository {
	return &BookingRepository{data: map[primitive.ObjectID]models.Booking{}}
}

func copyBooking(b models.Booking) models.Booking {
	if b.Rating != nil {
		r := *b.Rating
		b.Rating = &r
	}
	if b.Extra != nil {
		extra := make(map[string]interface{}, len(b.Extra))
		for k, v := range b.Extra {
			extra[k] = v
		}
		b.Extra = extra
	}
	return b
}

func (r *BookingRepository) Create(_ context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	r.Lock()
	defer r.Unlock()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	r.data[booking.ID] = copyBooking(*booking)
	r.order = append(r.order, booking.ID)
	return booking.ID, nil
}

// Get returns a copy of the booking with id.
func (r *BookingRepository) Get(id primitive.ObjectID) (models.Booking, bool) {
	r.RLock()
	defer r.RUnlock()
	b, ok := r.data[id]
	return copyBooking(b), ok
}

func (r *BookingRepository) List(_ context.Context, email string) ([]models.Booking, error) {
	r.RLock()
	defer r.RUnlock()
	out := []models.Booking{}
	for _, id := range r.order {
		b := r.data[id]
		if email != "" && b.UserEmail != email {
			continue
		}
		out = append(out, copyBooking(b))
	}
	return out, nil
}

func (r *BookingRepository) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	r.Lock()
	defer r.Unlock()
	if _, ok := r.data[id]; !ok {
		return models.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.data, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *BookingRepository) SetRating(_ context.Context, id primitive.ObjectID, rating float64) (models.UpdateResult, error) {
	r.Lock()
	defer r.Unlock()
	b, ok := r.data[id]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}
	result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if b.Rating == nil || *b.Rating != rating {
		result.ModifiedCount = 1
	}
	b.Rating = &rating
	r.data[id] = b
	return result, nil
}

func (r *BookingRepository) RatingsForService(_ context.Context, serviceID string) (bookingRepo.ServiceRatings, error) {
	r.RLock()
	defer r.RUnlock()
	var out bookingRepo.ServiceRatings
	for _, id := range r.order {
		b := r.data[id]
		if b.ServiceID != serviceID {
			continue
		}
		out.TotalBookings++
		if b.Rating != nil && !math.IsNaN(*b.Rating) && !math.IsInf(*b.Rating, 0) && *b.Rating >= 0 {
			out.Ratings = append(out.Ratings, *b.Rating)
		}
	}
	return out, nil
}

func (r *BookingRepository) EnsureIndexes(context.Context) error {
	return nil
}
