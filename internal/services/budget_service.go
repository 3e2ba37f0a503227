package services

import (
	"fmt"
	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/storage"
)

type BudgetServiceInterface interface {
	TotalCost(tripID string) (float64, error)
	HighCost(tripID string, threshold float64) ([]models.Activity, error)
}

type BudgetService struct {
	store  storage.StoreInterface
	logger providers.Logger
}

func NewBudgetService(store storage.StoreInterface, logger providers.Logger) BudgetServiceInterface {
	return &BudgetService{store: store, logger: logger}
}

// TotalCost sums the cost of every activity in the trip; an empty trip
// totals 0.
func (bs *BudgetService) TotalCost(tripID string) (float64, error) {
	trip, err := bs.resolve(tripID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, a := range trip.Activities {
		total += a.Cost
	}
	return total, nil
}

// HighCost returns activities with cost >= threshold, inclusive, in stored
// order. The threshold may be any real number.
func (bs *BudgetService) HighCost(tripID string, threshold float64) ([]models.Activity, error) {
	trip, err := bs.resolve(tripID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Activity, 0)
	for _, a := range trip.Activities {
		if a.Cost >= threshold {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (bs *BudgetService) resolve(tripID string) (*models.Trip, error) {
	doc, err := bs.store.Load()
	if err != nil {
		return nil, err
	}
	trip, ok := doc.FindTrip(tripID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrTripNotFound, tripID)
	}
	return trip, nil
}
