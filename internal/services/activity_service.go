package services

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/gookit/validate"

	"tripline/internal/models"
	"tripline/internal/providers"
	"tripline/internal/storage"
)

// ActivityInput carries user-supplied activity fields. Category stays a raw
// string here so validation happens in one place, before anything is written.
type ActivityInput struct {
	Name      string  `validate:"required"`
	Cost      float64 `validate:"min:0"`
	Category  string  `validate:"required"`
	StartTime time.Time
}

type ActivityServiceInterface interface {
	Add(tripID string, in ActivityInput) (models.Activity, error)
	Delete(tripID, activityID string) error
	ListByDay(tripID string, day time.Time) ([]models.Activity, error)
	ListByCategory(tripID string, category models.Category) ([]models.Activity, error)
	ListChronological(tripID string) ([]models.Activity, error)
}

type ActivityService struct {
	store  storage.StoreInterface
	logger providers.Logger
}

func NewActivityService(store storage.StoreInterface, logger providers.Logger) ActivityServiceInterface {
	return &ActivityService{store: store, logger: logger}
}

// Add validates the input, resolves the trip and appends a new activity with
// a fresh uuid. Validation failures happen before any load or write.
func (as *ActivityService) Add(tripID string, in ActivityInput) (models.Activity, error) {
	v := validate.Struct(&in)
	if !v.Validate() {
		return models.Activity{}, fmt.Errorf("invalid activity: %s", v.Errors.One())
	}
	category, err := models.ParseCategory(in.Category)
	if err != nil {
		return models.Activity{}, err
	}

	doc, err := as.store.Load()
	if err != nil {
		return models.Activity{}, err
	}
	trip, ok := doc.FindTrip(tripID)
	if !ok {
		return models.Activity{}, fmt.Errorf("%w: %s", models.ErrTripNotFound, tripID)
	}

	activity := models.Activity{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Cost:      in.Cost,
		Category:  category,
		StartTime: in.StartTime,
	}
	trip.Activities = append(trip.Activities, activity)

	if err := as.store.Save(doc); err != nil {
		return models.Activity{}, err
	}

	as.logger.Infof(providers.TypeApp, "Added activity %q to %s", activity.Name, tripID)
	return activity, nil
}

// Delete removes the activity with the given id from the trip. A missing
// activity id is a silent no-op; a missing trip is not.
func (as *ActivityService) Delete(tripID, activityID string) error {
	doc, err := as.store.Load()
	if err != nil {
		return err
	}
	trip, ok := doc.FindTrip(tripID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrTripNotFound, tripID)
	}

	kept := trip.Activities[:0]
	for _, a := range trip.Activities {
		if a.ID != activityID {
			kept = append(kept, a)
		}
	}
	trip.Activities = kept

	return as.store.Save(doc)
}

// ListByDay returns activities starting on the given calendar day in the
// host's local timezone, in stored order.
func (as *ActivityService) ListByDay(tripID string, day time.Time) ([]models.Activity, error) {
	trip, err := as.resolve(tripID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Activity, 0)
	for _, a := range trip.Activities {
		if sameDay(a.StartTime, day) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func (as *ActivityService) ListByCategory(tripID string, category models.Category) ([]models.Activity, error) {
	trip, err := as.resolve(tripID)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Activity, 0)
	for _, a := range trip.Activities {
		if a.Category == category {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

// ListChronological returns a new slice sorted ascending by start time.
// The sort is stable: equal start times keep their stored order. Stored
// order itself is never touched.
func (as *ActivityService) ListChronological(tripID string) ([]models.Activity, error) {
	trip, err := as.resolve(tripID)
	if err != nil {
		return nil, err
	}

	out := slices.Clone(trip.Activities)
	slices.SortStableFunc(out, func(a, b models.Activity) int {
		return a.StartTime.Compare(b.StartTime)
	})
	return out, nil
}

func (as *ActivityService) resolve(tripID string) (*models.Trip, error) {
	doc, err := as.store.Load()
	if err != nil {
		return nil, err
	}
	trip, ok := doc.FindTrip(tripID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrTripNotFound, tripID)
	}
	return trip, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(time.Local).Date()
	by, bm, bd := b.In(time.Local).Date()
	return ay == by && am == bm && ad == bd
}
