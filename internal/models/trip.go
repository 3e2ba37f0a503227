package models

import "time"

// Trip is the top-level aggregate; activities belong to a trip and are kept
// in insertion order, which is not necessarily chronological.
type Trip struct {
	ID          string     `json:"id"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"startDate"`
	Activities  []Activity `json:"activities"`
}

// Document is the entire persisted state, serialized as one JSON file.
type Document struct {
	Trips []Trip `json:"trips"`
}

// FindTrip returns a pointer into the document's trip slice, so callers can
// mutate the trip in place before handing the document back to the store.
func (d *Document) FindTrip(id string) (*Trip, bool) {
	for i := range d.Trips {
		if d.Trips[i].ID == id {
			return &d.Trips[i], true
		}
	}
	return nil, false
}
