package registry

import (
	"context"
	"errors"

	"servicehub/database"
	"servicehub/models"
	"servicehub/utils"
)

// ListServices returns every service. Order is whatever the store returns.
func (s *DefaultRegistryService) ListServices(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error fetching services", err)
	}
	return services, nil
}

// ListTopRated returns at most TopRatedLimit services, highest rating first.
// Services with equal ratings come back in store order, which is not stable.
func (s *DefaultRegistryService) ListTopRated(ctx context.Context) ([]models.Service, error) {
	services, err := s.Repo.GetTopRated(ctx, TopRatedLimit)
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error fetching top services", err)
	}
	return services, nil
}

func (s *DefaultRegistryService) GetService(ctx context.Context, id string) (*models.Service, error) {
	oid, err := utils.ParseObjectID(id, "service")
	if err != nil {
		return nil, err
	}
	service, err := s.Repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, utils.NewNotFound("Service not found")
		}
		return nil, utils.NewStoreUnavailable("Error fetching service", err)
	}
	return service, nil
}

// CreateService validates the required fields and persists the service with
// a zero rating. It returns the generated id as hex.
func (s *DefaultRegistryService) CreateService(ctx context.Context, input models.ServiceInput) (string, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return "", utils.NewInvalidInput("All fields are required!", fieldErrors(err)...)
	}

	id, err := s.Repo.Create(ctx, input.ToService(s.Now().UTC()))
	if err != nil {
		return "", utils.NewStoreUnavailable("Failed to add service", err)
	}
	s.Logger.Info("service created", zapID(id.Hex()))
	return id.Hex(), nil
}

// ListProviderServices matches provider_email exactly, case included.
func (s *DefaultRegistryService) ListProviderServices(ctx context.Context, email string) ([]models.Service, error) {
	services, err := s.Repo.GetByProviderEmail(ctx, email)
	if err != nil {
		return nil, utils.NewStoreUnavailable("Error fetching your services", err)
	}
	return services, nil
}

// UpdateService merges the supplied fields into the service. An id that
// matches nothing yields MatchedCount 0 and no error.
func (s *DefaultRegistryService) UpdateService(ctx context.Context, id string, update models.ServiceUpdate) (models.UpdateResult, error) {
	oid, err := utils.ParseObjectID(id, "service")
	if err != nil {
		return models.UpdateResult{}, err
	}
	if err := s.validate.Struct(update); err != nil {
		return models.UpdateResult{}, utils.NewInvalidInput("Invalid service fields", fieldErrors(err)...)
	}
	set := update.SetDocument()
	if len(set) == 0 {
		return models.UpdateResult{}, utils.NewInvalidInput("No updatable fields supplied")
	}

	result, err := s.Repo.UpdateFields(ctx, oid, set)
	if err != nil {
		return models.UpdateResult{}, utils.NewStoreUnavailable("Error updating service", err)
	}
	return result, nil
}

// DeleteService removes the service. Deleting an unknown id reports 0 deleted.
func (s *DefaultRegistryService) DeleteService(ctx context.Context, id string) (models.DeleteResult, error) {
	oid, err := utils.ParseObjectID(id, "service")
	if err != nil {
		return models.DeleteResult{}, err
	}
	result, err := s.Repo.Delete(ctx, oid)
	if err != nil {
		return models.DeleteResult{}, utils.NewStoreUnavailable("Error deleting service", err)
	}
	return result, nil
}
