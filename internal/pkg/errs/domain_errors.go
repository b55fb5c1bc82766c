package errs

import "errors"

// Domain-specific sentinel errors shared across the usecase layer
var (
	// Reservation errors
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrReservationNotPending = errors.New("reservation is not awaiting payment")
	ErrNoSupplierReference   = errors.New("reservation has no supplier process or order reference")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
	ErrSupplierCallFailed      = errors.New("supplier call failed")
)
