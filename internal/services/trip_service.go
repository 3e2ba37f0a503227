package services

import (
	"fmt"
	"time"
	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/storage"
)

type TripServiceInterface interface {
	Create(destination string, startDate time.Time) (string, error)
	List() ([]models.Trip, error)
	Delete(id string) error
}

type TripService struct {
	store  storage.StoreInterface
	logger providers.Logger
}

func NewTripService(store storage.StoreInterface, logger providers.Logger) TripServiceInterface {
	return &TripService{store: store, logger: logger}
}

// Create appends a new trip with an empty activity list and returns its id.
// Ids are derived from the current trip count (trip_001, trip_002, ...);
// deleting the highest-numbered trip means a later Create can reuse its id.
// That is documented behavior, not an invariant.
func (ts *TripService) Create(destination string, startDate time.Time) (string, error) {
	doc, err := ts.store.Load()
	if err != nil {
		return "", err
	}

	id := fmt.Sprintf("trip_%03d", len(doc.Trips)+1)
	doc.Trips = append(doc.Trips, models.Trip{
		ID:          id,
		Destination: destination,
		StartDate:   startDate,
		Activities:  []models.Activity{},
	})

	if err := ts.store.Save(doc); err != nil {
		return "", err
	}

	ts.logger.Infof(providers.TypeApp, "Created trip %s to %s", id, destination)
	return id, nil
}

func (ts *TripService) List() ([]models.Trip, error) {
	doc, err := ts.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Trips, nil
}

// Delete removes the trip with the given id. A missing id is a silent no-op.
func (ts *TripService) Delete(id string) error {
	doc, err := ts.store.Load()
	if err != nil {
		return err
	}

	kept := doc.Trips[:0]
	for _, trip := range doc.Trips {
		if trip.ID != id {
			kept = append(kept, trip)
		}
	}
	doc.Trips = kept

	if err := ts.store.Save(doc); err != nil {
		return err
	}

	ts.logger.Infof(providers.TypeApp, "Deleted trip %s", id)
	return nil
}
