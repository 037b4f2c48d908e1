package registry

import (
	"context"
	"time"

	"servicehub/database/repository"
	"servicehub/models"
	"servicehub/services/notification"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// TopRatedLimit is the size of the top-rated listing.
const TopRatedLimit = 6

// RegistryService defines the operations over service listings.
type RegistryService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	ListTopRated(ctx context.Context) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, input models.ServiceInput) (string, error)
	ListProviderServices(ctx context.Context, email string) ([]models.Service, error)
	UpdateService(ctx context.Context, id string, update models.ServiceUpdate) (models.UpdateResult, error)
	DeleteService(ctx context.Context, id string) (models.DeleteResult, error)
	SetRating(ctx context.Context, id string, input models.RatingInput) (models.UpdateResult, error)
}

// DefaultRegistryService is the production implementation.
type DefaultRegistryService struct {
	Repo     repository.ServiceRepository
	Notifier notification.RatingNotifier
	Logger   *zap.Logger

	// Now is overridable in tests.
	Now func() time.Time

	validate *validator.Validate
}

// NewRegistryService wires a DefaultRegistryService. notifier and logger
// may be nil.
func NewRegistryService(repo repository.ServiceRepository, notifier notification.RatingNotifier, logger *zap.Logger) *DefaultRegistryService {
	if notifier == nil {
		notifier = notification.NopNotifier{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRegistryService{
		Repo:     repo,
		Notifier: notifier,
		Logger:   logger,
		Now:      time.Now,
		validate: newValidator(),
	}
}
