package utils

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// CoercePrice converts a loosely typed stored price to a float64. Legacy
// documents carry prices as strings ("100"), newer ones as BSON numbers.
// Anything unparseable or absent coerces to 0.
func CoercePrice(v any) float64 {
	switch p := v.(type) {
	case float64:
		return p
	case float32:
		return float64(p)
	case int:
		return float64(p)
	case int32:
		return float64(p)
	case int64:
		return float64(p)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
