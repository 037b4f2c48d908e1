package registry

import (
	"context"

	"servicehub/models"
	"servicehub/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func zapID(id string) zap.Field {
	return zap.String("serviceId", id)
}

// SetRating overwrites the service rating directly, bypassing aggregation.
// It races with booking-derived recomputation; the last write wins.
func (s *DefaultRegistryService) SetRating(ctx context.Context, id string, input models.RatingInput) (models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id, "service")
	if err != nil {
		return models.UpdateResult{}, err
	}
	rating, err := utils.ValidateRating(input.Rating)
	if err != nil {
		return models.UpdateResult{}, err
	}

	result, err := s.Repo.UpdateFields(ctx, oid, bson.M{"rating": rating})
	if err != nil {
		return models.UpdateResult{}, utils.NewStoreUnavailable("Error updating service rating", err)
	}

	if result.MatchedCount > 0 {
		event := models.RatingEvent{
			Type:      models.RatingEventServiceSet,
			ServiceID: oid.Hex(),
			Rating:    rating,
			At:        s.Now().UTC(),
		}
		if err := s.Notifier.NotifyRating(ctx, event); err != nil {
			s.Logger.Warn("rating event not published", zapID(oid.Hex()), zap.Error(err))
		}
	}
	return result, nil
}
