package app

import (
	"errors"
	"fmt"
)

var (
	// ErrRefreshInFlight is returned by BeginRefresh while a refresh is running.
	ErrRefreshInFlight = errors.New("refresh already in progress")

	// ErrRefreshThrottled is returned when refreshes arrive faster than the
	// configured minimum interval.
	ErrRefreshThrottled = errors.New("refresh requested too soon")
)

// SourceError reports that the scan source could not produce records.
// The inventory is left unchanged when it occurs.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("scan source unavailable: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
