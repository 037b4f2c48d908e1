package memory

import (
	"context"
	"testing"

	"servicehub/database"
	"servicehub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestServiceRepositoryUpdateFields(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository()
	id, err := repo.Create(ctx, &models.Service{ServiceName: "Gardening", Price: 20, Category: "Outdoor"})
	require.NoError(t, err)

	result, err := repo.UpdateFields(ctx, id, bson.M{"price": 35.0})
	require.NoError(t, err)
	assert.Equal(t, models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, result)

	result, err = repo.UpdateFields(ctx, id, bson.M{"price": 35.0})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount, "same value is not a modification")

	s, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.Number(35), s.Price)
	assert.Equal(t, "Outdoor", s.Category)
	assert.Equal(t, id, s.ID)

	result, err = repo.UpdateFields(ctx, primitive.NewObjectID(), bson.M{"price": 1.0})
	require.NoError(t, err)
	assert.Equal(t, models.UpdateResult{Acknowledged: true}, result)
}

func TestServiceRepositoryGetByIDMissing(t *testing.T) {
	_, err := NewServiceRepository().GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestServiceRepositoryRejectsDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository()
	id := primitive.NewObjectID()
	_, err := repo.Create(ctx, &models.Service{ID: id})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Service{ID: id})
	assert.Error(t, err)
}

func TestServiceRepositoryDeleteKeepsOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository()
	var ids []primitive.ObjectID
	for _, name := range []string{"a", "b", "c"} {
		id, err := repo.Create(ctx, &models.Service{ServiceName: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	result, err := repo.Delete(ctx, ids[1])
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.DeletedCount)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ServiceName)
	assert.Equal(t, "c", all[1].ServiceName)
}

func TestBookingRepositoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	rating := 2.0
	id, err := repo.Create(ctx, &models.Booking{Rating: &rating, Extra: map[string]interface{}{"note": "a"}})
	require.NoError(t, err)

	listed, err := repo.List(ctx, "")
	require.NoError(t, err)
	*listed[0].Rating = 5
	listed[0].Extra["note"] = "changed"

	stored, ok := repo.Get(id)
	require.True(t, ok)
	assert.Equal(t, 2.0, *stored.Rating)
	assert.Equal(t, "a", stored.Extra["note"])
}

func TestBookingRepositoryRatingsForService(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	four, two, negative := 4.0, 2.0, -1.0
	for _, b := range []models.Booking{
		{ServiceID: "s1", Rating: &four},
		{ServiceID: "s1", Rating: &two},
		{ServiceID: "s1"},
		{ServiceID: "s1", Rating: &negative},
		{ServiceID: "s2", Rating: &four},
	} {
		b := b
		_, err := repo.Create(ctx, &b)
		require.NoError(t, err)
	}

	ratings, err := repo.RatingsForService(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 4, ratings.TotalBookings)
	assert.Equal(t, []float64{4, 2}, ratings.Ratings)
}

func TestBookingRepositorySetRating(t *testing.T) {
	ctx := context.Background()
	repo := NewBookingRepository()
	id, err := repo.Create(ctx, &models.Booking{})
	require.NoError(t, err)

	result, err := repo.SetRating(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)

	result, err = repo.SetRating(ctx, id, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, int64(0), result.ModifiedCount)
}
