package models

import "time"

// UpdateResult mirrors the store's update acknowledgement.
// MatchedCount is 0 when the id did not match anything; that is not an error.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the store's delete acknowledgement.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// RatingSummary is returned after a service rating is derived from bookings.
type RatingSummary struct {
	ServiceID     string  `json:"serviceId"`
	Rating        float64 `json:"rating"`
	RatedBookings int     `json:"ratedBookings"`
	TotalBookings int     `json:"totalBookings"`
}

type RatingEventType string

const (
	RatingEventServiceSet        = RatingEventType("service.rating.set")
	RatingEventServiceRecomputed = RatingEventType("service.rating.recomputed")
	RatingEventBookingRated      = RatingEventType("booking.rated")
)

// RatingEvent is published after every successful rating write.
type RatingEvent struct {
	Type      RatingEventType `json:"type"`
	ServiceID string          `json:"serviceId,omitempty"`
	BookingID string          `json:"bookingId,omitempty"`
	Rating    float64         `json:"rating"`
	At        time.Time       `json:"at"`
}
