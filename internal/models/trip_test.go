package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *Document {
	return &Document{
		Trips: []Trip{
			{ID: "trip_001", Destination: "Japan", StartDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "trip_002", Destination: "Italy", StartDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
}

func TestDocument_FindTrip(t *testing.T) {
	doc := sampleDocument()

	trip, ok := doc.FindTrip("trip_002")
	require.True(t, ok)
	assert.Equal(t, "Italy", trip.Destination)
}

func TestDocument_FindTrip_Missing(t *testing.T) {
	doc := sampleDocument()

	_, ok := doc.FindTrip("trip_999")
	assert.False(t, ok)
}

func TestDocument_FindTrip_MutatesInPlace(t *testing.T) {
	doc := sampleDocument()

	trip, ok := doc.FindTrip("trip_001")
	require.True(t, ok)
	trip.Activities = append(trip.Activities, Activity{ID: "a1", Name: "Sushi dinner", Cost: 45, Category: CategoryFood})

	assert.Len(t, doc.Trips[0].Activities, 1)
}
