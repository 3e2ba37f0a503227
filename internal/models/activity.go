package models

import (
	"fmt"
	"time"
)

// Category is the closed set of activity kinds. Anything outside the three
// constants below is rejected at construction time via ParseCategory.
type Category string

const (
	CategoryFood        Category = "food"
	CategoryTransport   Category = "transport"
	CategorySightseeing Category = "sightseeing"
)

// Categories lists all valid values in menu order.
func Categories() []Category {
	return []Category{CategoryFood, CategoryTransport, CategorySightseeing}
}

// ParseCategory validates a raw string against the closed enumeration.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryFood, CategoryTransport, CategorySightseeing:
		return Category(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, s)
}

func (c Category) String() string {
	return string(c)
}

// Activity is a single cost-bearing, time-stamped item within a trip.
type Activity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cost      float64   `json:"cost"`
	Category  Category  `json:"category"`
	StartTime time.Time `json:"startTime"`
}
