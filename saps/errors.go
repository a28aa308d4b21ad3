package saps

import (
	"errors"
	"fmt"
)

// ErrNoMatch means the enquiry page answered with its search form instead of
// a results table: the reference details matched nothing. Distinct from a
// structural parse failure, which signals the site format changed.
var ErrNoMatch = errors.New("no matching application found")

// ErrPlannedDowntime means the lookup was attempted inside the SAPS site's
// daily maintenance window and was short-circuited before any network call.
var ErrPlannedDowntime = errors.New("enquiry service is in its nightly maintenance window")

// FetchError reports that every proxy transport was exhausted. It carries the
// last underlying cause.
type FetchError struct {
	Attempts int
	LastErr  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("all %d proxy transports failed: %v", e.Attempts, e.LastErr)
}

func (e *FetchError) Unwrap() error {
	return e.LastErr
}

// SchemaMismatchError reports that the enquiry page no longer looks the way
// the parser expects. The upstream markup has no stability guarantee.
type SchemaMismatchError struct {
	Reason string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("enquiry page format changed: %s", e.Reason)
}
