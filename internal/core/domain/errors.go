package domain

import (
	"errors"
	"fmt"
)

// ErrNoEligibleChannels is returned when every known channel is avoided
// and none is preferred, leaving the simulation with nothing to spend on.
var ErrNoEligibleChannels = errors.New("no eligible channels")

// ErrNotFound is returned by repositories when a campaign or results
// bundle does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError describes an input that failed shape or range
// validation. Engines return it before any computation happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err represents rejected input rather
// than an internal failure.
func IsInvalidInput(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrNoEligibleChannels)
}
