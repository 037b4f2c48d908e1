package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBookingUnmarshalJSONKeepsExtraFields(t *testing.T) {
	body := `{
		"_id": "ignored",
		"serviceId": "6650f1c2a1b2c3d4e5f60718",
		"userEmail": "ana@example.com",
		"date": "2025-03-02",
		"notes": {"gate": "B"},
		"guests": 3
	}`

	var b Booking
	require.NoError(t, json.Unmarshal([]byte(body), &b))

	assert.True(t, b.ID.IsZero())
	assert.Equal(t, "6650f1c2a1b2c3d4e5f60718", b.ServiceID)
	assert.Equal(t, "ana@example.com", b.UserEmail)
	assert.False(t, b.IsRated())
	assert.Equal(t, "2025-03-02", b.Extra["date"])
	assert.Equal(t, float64(3), b.Extra["guests"])
	assert.Equal(t, map[string]interface{}{"gate": "B"}, b.Extra["notes"])
	assert.NotContains(t, b.Extra, "_id")
	assert.NotContains(t, b.Extra, "serviceId")
}

func TestBookingUnmarshalJSONRejectsMistypedCoreFields(t *testing.T) {
	for _, body := range []string{
		`{"rating": "five"}`,
		`{"serviceId": 12}`,
		`{"userEmail": false}`,
		`[1, 2]`,
	} {
		var b Booking
		assert.Error(t, json.Unmarshal([]byte(body), &b), body)
	}
}

func TestBookingMarshalJSONFlattensExtra(t *testing.T) {
	rating := 4.0
	id := primitive.NewObjectID()
	b := Booking{
		ID:        id,
		ServiceID: "svc",
		UserEmail: "ana@example.com",
		Rating:    &rating,
		Extra:     map[string]interface{}{"date": "2025-03-02"},
	}

	data, err := json.Marshal(b)
	require.NoError(t, err)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, id.Hex(), out["_id"])
	assert.Equal(t, "svc", out["serviceId"])
	assert.Equal(t, "ana@example.com", out["userEmail"])
	assert.Equal(t, 4.0, out["rating"])
	assert.Equal(t, "2025-03-02", out["date"])
}

func TestBookingMarshalJSONOmitsAbsentCoreFields(t *testing.T) {
	data, err := json.Marshal(Booking{Extra: map[string]interface{}{"note": "x"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"note": "x"}`, string(data))
}

func TestBookingBSONStoresExtraInline(t *testing.T) {
	b := Booking{
		ServiceID: "svc",
		UserEmail: "ana@example.com",
		Extra:     map[string]interface{}{"date": "2025-03-02"},
	}
	raw, err := bson.Marshal(b)
	require.NoError(t, err)

	doc := bson.Raw(raw)
	assert.Equal(t, "2025-03-02", doc.Lookup("date").StringValue())
	assert.Equal(t, "svc", doc.Lookup("serviceId").StringValue())
	_, err = doc.LookupErr("rating")
	assert.Error(t, err, "unrated bookings store no rating field")

	var decoded Booking
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	assert.Equal(t, "svc", decoded.ServiceID)
	assert.Equal(t, "2025-03-02", decoded.Extra["date"])
}

func TestBookingUnmarshalBSONToleratesForeignShapes(t *testing.T) {
	sid := primitive.NewObjectID()
	raw, err := bson.Marshal(bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "serviceId", Value: sid},
		{Key: "userEmail", Value: 42},
		{Key: "rating", Value: "4"},
		{Key: "slot", Value: bson.D{{Key: "day", Value: "mon"}}},
	})
	require.NoError(t, err)

	var b Booking
	require.NoError(t, bson.Unmarshal(raw, &b))
	assert.Equal(t, sid.Hex(), b.ServiceID)
	assert.Empty(t, b.UserEmail)
	assert.EqualValues(t, 42, b.Extra["userEmail"])
	require.True(t, b.IsRated())
	assert.Equal(t, 4.0, *b.Rating)
	assert.Contains(t, b.Extra, "slot")

	raw, err = bson.Marshal(bson.D{{Key: "rating", Value: "five stars"}})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(raw, &b))
	assert.False(t, b.IsRated())
	assert.NotContains(t, b.Extra, "rating")
}
