package wire

import "errors"

var (
	// ErrMalformedToken indicates a token whose direction letter is not one of
	// U, D, L, R or whose step count is not a positive decimal integer.
	ErrMalformedToken = errors.New("wire: malformed token")
	// ErrNoIntersections indicates the two wires never cross, so neither the
	// nearest distance nor the fewest steps is defined.
	ErrNoIntersections = errors.New("wire: wires do not intersect")
	// ErrBadWorkers indicates a negative ScanOptions.Workers.
	ErrBadWorkers = errors.New("wire: workers must be non-negative")
)
