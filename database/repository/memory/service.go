package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"servicehub/database"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceRepository is an in-memory service repository. Iteration follows
// insertion order.
type ServiceRepository struct {
	sync.RWMutex
	order []primitive.ObjectID
	data  map[primitive.ObjectID]models.Service
}

// NewServiceRepository creates a new memory service repository.
func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{data: map[primitive.ObjectID]models.Service{}}
}

func (r *ServiceRepository) all() []models.Service {
	out := make([]models.Service, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.data[id])
	}
	return out
}

func (r *ServiceRepository) GetAll(_ context.Context) ([]models.Service, error) {
	r.RLock()
	defer r.RUnlock()
	return r.all(), nil
}

func (r *ServiceRepository) GetTopRated(_ context.Context, limit int64) ([]models.Service, error) {
	r.RLock()
	defer r.RUnlock()
	services := r.all()
	sort.SliceStable(services, func(i, j int) bool {
		return services[i].Rating > services[j].Rating
	})
	if limit > 0 && int64(len(services)) > limit {
		services = services[:limit]
	}
	return services, nil
}

func (r *ServiceRepository) GetByID(_ context.Context, id primitive.ObjectID) (*models.Service, error) {
	r.RLock()
	defer r.RUnlock()
	s, ok := r.data[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return &s, nil
}

func (r *ServiceRepository) GetByProviderEmail(_ context.Context, email string) ([]models.Service, error) {
	r.RLock()
	defer r.RUnlock()
	out := []models.Service{}
	for _, s := range r.all() {
		if s.ProviderEmail == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ServiceRepository) Create(_ context.Context, service *models.Service) (primitive.ObjectID, error) {
	r.Lock()
	defer r.Unlock()
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	if _, exists := r.data[service.ID]; exists {
		return primitive.NilObjectID, fmt.Errorf("duplicate key %s", service.ID.Hex())
	}
	r.data[service.ID] = *service
	r.order = append(r.order, service.ID)
	return service.ID, nil
}

// UpdateFields merges fields the way $set does, by round-tripping the
// document through BSON.
func (r *ServiceRepository) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error) {
	r.Lock()
	defer r.Unlock()
	current, ok := r.data[id]
	if !ok {
		return models.UpdateResult{Acknowledged: true}, nil
	}

	updated, err := mergeSet(current, fields)
	if err != nil {
		return models.UpdateResult{}, err
	}
	updated.ID = id

	before, _ := bson.Marshal(current)
	after, _ := bson.Marshal(updated)
	r.data[id] = updated

	result := models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if string(before) != string(after) {
		result.ModifiedCount = 1
	}
	return result, nil
}

func mergeSet(current models.Service, fields bson.M) (models.Service, error) {
	raw, err := bson.Marshal(current)
	if err != nil {
		return models.Service{}, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return models.Service{}, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	raw, err = bson.Marshal(doc)
	if err != nil {
		return models.Service{}, err
	}
	var out models.Service
	if err := bson.Unmarshal(raw, &out); err != nil {
		return models.Service{}, err
	}
	return out, nil
}

func (r *ServiceRepository) Delete(_ context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
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

func (r *ServiceRepository) EnsureIndexes(context.Context) error {
	return nil
}
