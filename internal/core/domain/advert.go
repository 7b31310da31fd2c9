package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Advertisement is the core listing entity. Ads have no update operation:
// they are created by their owner and can only be deleted by them.
type Advertisement struct {
	ID          int
	OwnerID     int
	Title       string
	Description string
	Price       float64
	CreatedAt   time.Time
}

// Money renders a price with exactly two decimal digits on the wire.
type Money float64

func (m Money) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(m), 'f', 2, 64), nil
}

// ParsePrice converts a client-supplied price string. Prices must be finite
// and non-negative.
func ParsePrice(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, ErrInvalidPrice
	}
	return v, nil
}
