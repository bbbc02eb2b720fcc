package utils

import "errors"

var (
	ErrRegionNotFound  = errors.New("region not found")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")

	// Upstream proxy error taxonomy. Configuration errors are distinct from
	// request failures so callers can attach remediation guidance.
	ErrMissingAPIKey      = errors.New("upstream api key not configured")
	ErrMissingCoordinates = errors.New("coordinates (x, y) are required")
	ErrUnsupportedAction  = errors.New("unsupported action")
	ErrUpstreamRequest    = errors.New("upstream request failed")

	// Wizard and prompt errors.
	ErrNoDestination    = errors.New("no destination selected")
	ErrDurationRequired = errors.New("duration must be a positive number of days")
	ErrRequestInFlight  = errors.New("another request is still loading")
	ErrEmptyPlan        = errors.New("no content generated")
)
