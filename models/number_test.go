package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in      string
		want    Number
		wantErr bool
	}{
		{in: "25", want: 25},
		{in: "$25", want: 25},
		{in: " $ 19.99 ", want: 19.99},
		{in: "KES 1,200", want: 1200},
		{in: "-3", want: -3},
		{in: "", wantErr: true},
		{in: "$", wantErr: true},
		{in: "free", wantErr: true},
		{in: "NaN", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseNumber(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, float64(tt.want), float64(got), 1e-9)
		})
	}
}

func TestNumberUnmarshalJSON(t *testing.T) {
	var v struct {
		A Number `json:"a"`
		B Number `json:"b"`
		C Number `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.5, "b": "$40", "c": null}`), &v))
	assert.Equal(t, Number(12.5), v.A)
	assert.Equal(t, Number(40), v.B)
	assert.Equal(t, Number(0), v.C)

	assert.Error(t, json.Unmarshal([]byte(`{"a": true}`), &v))
	assert.Error(t, json.Unmarshal([]byte(`{"a": "cheap"}`), &v))
}

func TestNumberUnmarshalBSONValue(t *testing.T) {
	docs := []struct {
		name string
		doc  bson.M
		want Number
	}{
		{name: "double", doc: bson.M{"price": 19.5}, want: 19.5},
		{name: "int32", doc: bson.M{"price": int32(7)}, want: 7},
		{name: "int64", doc: bson.M{"price": int64(9)}, want: 9},
		{name: "prefixed string", doc: bson.M{"price": "$30"}, want: 30},
		{name: "garbage string", doc: bson.M{"price": "call us"}, want: 0},
		{name: "null", doc: bson.M{"price": nil}, want: 0},
	}
	for _, tt := range docs {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(tt.doc)
			require.NoError(t, err)

			var out struct {
				Price Number `bson:"price"`
			}
			require.NoError(t, bson.Unmarshal(raw, &out))
			assert.Equal(t, tt.want, out.Price)
		})
	}
}

func TestNumberEncodesAsDouble(t *testing.T) {
	raw, err := bson.Marshal(struct {
		Price Number `bson:"price"`
	}{Price: 12})
	require.NoError(t, err)

	f, ok := bson.Raw(raw).Lookup("price").DoubleOK()
	require.True(t, ok)
	assert.Equal(t, 12.0, f)
}

func TestStoredRating(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   float64
		wantOK bool
	}{
		{"double", 4.5, 4.5, true},
		{"int32", int32(3), 3, true},
		{"int64", int64(2), 2, true},
		{"zero", 0.0, 0, true},
		{"numeric string", "5", 5, true},
		{"word", "great", 0, false},
		{"null", nil, 0, false},
		{"bool", true, 0, false},
		{"negative", -1.0, 0, false},
		{"negative string", "-2", 0, false},
		{"nan", math.NaN(), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := bson.Marshal(bson.M{"rating": tt.value})
			require.NoError(t, err)

			got, ok := StoredRating(bson.Raw(raw).Lookup("rating"))
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := StoredRating(bson.RawValue{})
	assert.False(t, ok, "missing field is unrated")
}
