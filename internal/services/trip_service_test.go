package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripline/internal/models"
	"tripline/internal/testutil"
)

func newTestTripService() (TripServiceInterface, *testutil.MockStore) {
	store := &testutil.MockStore{Doc: models.Document{Trips: []models.Trip{}}}
	return NewTripService(store, &testutil.MockLogger{}), store
}

func TestTripService_Create_SequentialIDs(t *testing.T) {
	ts, _ := newTestTripService()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	for i, want := range []string{"trip_001", "trip_002", "trip_003"} {
		id, err := ts.Create("Japan", start.AddDate(0, i, 0))
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
}

func TestTripService_Create_AppendsEmptyTrip(t *testing.T) {
	ts, store := newTestTripService()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	id, err := ts.Create("Japan", start)
	require.NoError(t, err)
	assert.Equal(t, "trip_001", id)

	require.Len(t, store.Doc.Trips, 1)
	trip := store.Doc.Trips[0]
	assert.Equal(t, "Japan", trip.Destination)
	assert.True(t, start.Equal(trip.StartDate))
	assert.Empty(t, trip.Activities)
}

func TestTripService_List_StoredOrder(t *testing.T) {
	ts, _ := newTestTripService()
	_, err := ts.Create("Japan", time.Now())
	require.NoError(t, err)
	_, err = ts.Create("Italy", time.Now())
	require.NoError(t, err)

	trips, err := ts.List()
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Japan", trips[0].Destination)
	assert.Equal(t, "Italy", trips[1].Destination)
}

func TestTripService_Delete_RemovesTrip(t *testing.T) {
	ts, store := newTestTripService()
	_, err := ts.Create("Japan", time.Now())
	require.NoError(t, err)
	_, err = ts.Create("Italy", time.Now())
	require.NoError(t, err)

	require.NoError(t, ts.Delete("trip_001"))

	require.Len(t, store.Doc.Trips, 1)
	assert.Equal(t, "trip_002", store.Doc.Trips[0].ID)
}

func TestTripService_Delete_MissingIsNoop(t *testing.T) {
	ts, store := newTestTripService()
	_, err := ts.Create("Japan", time.Now())
	require.NoError(t, err)

	require.NoError(t, ts.Delete("trip_999"))
	assert.Len(t, store.Doc.Trips, 1)
}

func TestTripService_IDReuseAfterDeletingNewest(t *testing.T) {
	// Documented limitation: ids derive from the current count, so deleting
	// the highest-numbered trip lets the next create reuse its id.
	ts, _ := newTestTripService()
	_, err := ts.Create("Japan", time.Now())
	require.NoError(t, err)
	_, err = ts.Create("Italy", time.Now())
	require.NoError(t, err)

	require.NoError(t, ts.Delete("trip_002"))

	id, err := ts.Create("Spain", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "trip_002", id)
}

func TestTripService_Create_StorageErrorPropagates(t *testing.T) {
	store := &testutil.MockStore{LoadErr: models.ErrStorage}
	ts := NewTripService(store, &testutil.MockLogger{})

	_, err := ts.Create("Japan", time.Now())
	assert.True(t, errors.Is(err, models.ErrStorage))
}
