package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"servicehub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "bookings"

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoBookingRepo creates a BookingRepository backed by the "bookings"
// collection of db. Every call is bounded by timeout.
func NewMongoBookingRepo(db *mongo.Database, timeout time.Duration) BookingRepository {
	return newMongoBookingRepo(db.Collection(collectionName), timeout)
}

func newMongoBookingRepo(coll *mongo.Collection, timeout time.Duration) *MongoBookingRepo {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MongoBookingRepo{coll: coll, timeout: timeout}
}

func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to save booking: %w", err)
	}
	return booking.ID, nil
}

func (r *MongoBookingRepo) List(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	filter := bson.M{}
	if email != "" {
		filter["userEmail"] = email
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) Delete(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("failed to delete booking with id %s: %w", id.Hex(), err)
	}
	return models.DeleteResult{Acknowledged: true, DeletedCount: result.DeletedCount}, nil
}

func (r *MongoBookingRepo) SetRating(ctx context.Context, id primitive.ObjectID, rating float64) (models.UpdateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"rating": rating}})
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to rate booking with id %s: %w", id.Hex(), err)
	}
	return models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

// serviceRefFilter matches the reference stored as a hex string, or as an
// ObjectID by writers that converted it.
func serviceRefFilter(serviceID string) bson.M {
	if oid, err := primitive.ObjectIDFromHex(serviceID); err == nil {
		return bson.M{"serviceId": bson.M{"$in": bson.A{serviceID, oid}}}
	}
	return bson.M{"serviceId": serviceID}
}

func (r *MongoBookingRepo) RatingsForService(ctx context.Context, serviceID string) (ServiceRatings, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cursor, err := r.coll.Find(ctx, serviceRefFilter(serviceID), opts)
	if err != nil {
		return ServiceRatings{}, fmt.Errorf("failed to fetch bookings for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var out ServiceRatings
	for cursor.Next(ctx) {
		out.TotalBookings++
		if rating, ok := models.StoredRating(cursor.Current.Lookup("rating")); ok {
			out.Ratings = append(out.Ratings, rating)
		}
	}
	if err := cursor.Err(); err != nil {
		return ServiceRatings{}, fmt.Errorf("cursor error: %w", err)
	}
	return out, nil
}
