package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Number is a float64 that tolerates the shapes older writers stored:
// any numeric BSON value, or a numeric string with an optional currency
// prefix such as "$25" or "KES 1,200".
type Number float64

// ParseNumber parses s, ignoring a leading currency symbol or code and
// thousands separators.
func ParseNumber(s string) (Number, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimLeftFunc(trimmed, func(r rune) bool {
		return !(r >= '0' && r <= '9') && r != '-' && r != '.'
	})
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	if trimmed == "" {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return Number(f), nil
}

func (n Number) Float64() float64 {
	return float64(n)
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (n *Number) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = Number(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("expected a number or numeric string")
	}
	parsed, err := ParseNumber(s)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// UnmarshalBSONValue decodes doubles, integers, decimals and numeric strings.
// Null, undefined and unparseable strings decode to 0.
func (n *Number) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*n = Number(rv.Double())
	case bsontype.Int32:
		*n = Number(rv.Int32())
	case bsontype.Int64:
		*n = Number(rv.Int64())
	case bsontype.Decimal128:
		f, err := strconv.ParseFloat(rv.Decimal128().String(), 64)
		if err != nil {
			return err
		}
		*n = Number(f)
	case bsontype.String:
		parsed, err := ParseNumber(rv.StringValue())
		if err != nil {
			*n = 0
			return nil
		}
		*n = parsed
	case bsontype.Null, bsontype.Undefined:
		*n = 0
	default:
		return fmt.Errorf("cannot decode %s into Number", t)
	}
	return nil
}

// StoredRating reads a rating written by any writer. Numbers and numeric
// strings count when finite and non-negative; anything else is unrated.
func StoredRating(v bson.RawValue) (float64, bool) {
	var n Number
	switch v.Type {
	case bsontype.Double, bsontype.Int32, bsontype.Int64, bsontype.Decimal128:
		if err := n.UnmarshalBSONValue(v.Type, v.Value); err != nil {
			return 0, false
		}
	case bsontype.String:
		parsed, err := ParseNumber(v.StringValue())
		if err != nil {
			return 0, false
		}
		n = parsed
	default:
		return 0, false
	}
	f := n.Float64()
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return f, true
}
