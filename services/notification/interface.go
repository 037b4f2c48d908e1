package notification

import (
	"context"

	"servicehub/models"
)

// RatingNotifier announces rating changes to downstream consumers.
type RatingNotifier interface {
	NotifyRating(ctx context.Context, event models.RatingEvent) error
}

// NopNotifier drops every event. Used when Redis is not configured.
type NopNotifier struct{}

func (NopNotifier) NotifyRating(context.Context, models.RatingEvent) error {
	return nil
}
