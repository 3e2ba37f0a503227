package models

import "errors"

// ErrStorage wraps any failure of the backing file: missing, unreadable,
// unwritable or not parseable as JSON.
var ErrStorage = errors.New("storage error")

// ErrTripNotFound is returned when a referenced trip id does not exist in
// the document at resolution time. Deletes treat a missing target as a
// no-op instead.
var ErrTripNotFound = errors.New("trip not found")

// ErrInvalidCategory is returned for category values outside the closed
// enumeration, before any write happens.
var ErrInvalidCategory = errors.New("invalid category")

// ErrLookupFailed is the single generic failure of the destination lookup;
// callers do not get to distinguish network errors from unknown countries.
var ErrLookupFailed = errors.New("could not fetch country data")
