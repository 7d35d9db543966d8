package errs

import "errors"

// Sentinel errors shared between the command and query use case layers
var (
	// Booking errors
	ErrNoAvailability      = errors.New("no table available for the requested window")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrPersistenceFailure  = errors.New("reservation could not be stored")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")
)
