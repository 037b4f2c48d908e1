package serviceRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"servicehub/database"
	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "services"

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoServiceRepo creates a ServiceRepository backed by the "services"
// collection of db. Every call is bounded by timeout.
func NewMongoServiceRepo(db *mongo.Database, timeout time.Duration) ServiceRepository {
	return newMongoServiceRepo(db.Collection(collectionName), timeout)
}

func newMongoServiceRepo(coll *mongo.Collection, timeout time.Duration) *MongoServiceRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoServiceRepo{coll: coll, timeout: timeout}
}

func (r *MongoServiceRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	services, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetTopRated(ctx context.Context, limit int64) ([]models.Service, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(limit)
	services, err := r.find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve top services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	var service models.Service
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, database.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id.Hex(), err)
	}
	return &service, nil
}

func (r *MongoServiceRepo) GetByProviderEmail(ctx context.Context, email string) ([]models.Service, error) {
	services, err := r.find(ctx, bson.M{"provider_email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find services for provider %s: %w", email, err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service *models.Service) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if service.ID.IsZero() {
		service.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create service: %w", err)
	}
	return service.ID, nil
}

func (r *MongoServiceRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to update service with id %s: %w", id.Hex(), err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete service with id %s: %w", id.Hex(), err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}
