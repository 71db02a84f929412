package smtppass

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRegion is returned when a region has no SES SMTP endpoint.
	ErrInvalidRegion = errors.New("invalid region")

	// ErrMalformedPassword is returned when a value is not a derived SMTP password.
	ErrMalformedPassword = errors.New("malformed smtp password")
)

// InvalidRegionError carries the rejected region value.
// It matches ErrInvalidRegion via errors.Is.
type InvalidRegionError struct {
	Region string
}

func (e *InvalidRegionError) Error() string {
	return fmt.Sprintf("the %q region doesn't have an SMTP endpoint", e.Region)
}

func (e *InvalidRegionError) Unwrap() error {
	return ErrInvalidRegion
}
