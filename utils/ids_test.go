package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	got, err := ParseObjectID(id.Hex(), "service")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	for _, bad := range []string{"", "123", "zzzzzzzzzzzzzzzzzzzzzzzz", id.Hex() + "0"} {
		_, err := ParseObjectID(bad, "booking")
		require.Error(t, err, bad)
		var appErr *AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, KindInvalidInput, appErr.Kind)
		assert.Equal(t, "Invalid booking id", appErr.Message)
	}
}

func TestValidateRating(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	for _, ok := range []float64{0, 3, 4.5, 10} {
		got, err := ValidateRating(f(ok))
		require.NoError(t, err)
		assert.Equal(t, ok, got)
	}

	for name, bad := range map[string]*float64{
		"missing":  nil,
		"negative": f(-0.5),
		"nan":      f(math.NaN()),
		"inf":      f(math.Inf(1)),
	} {
		_, err := ValidateRating(bad)
		assert.Equal(t, KindInvalidInput, KindOf(err), name)
	}
}
