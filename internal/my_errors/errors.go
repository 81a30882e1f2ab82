package my_errors

import "errors"

// Sentinel my_errors для бизнес-логики
var (
	// Validation my_errors
	ErrValidation           = errors.New("validation failed")
	ErrEmptySelection       = errors.New("at least one entity must be selected")
	ErrEmptyField           = errors.New("required field is empty")
	ErrInvalidEffectiveDate = errors.New("effective date is not a valid ISO-8601 date")

	// Batch my_errors
	ErrBatchInProgress = errors.New("a batch run is already in progress")

	// Gateway my_errors
	ErrGatewayUnavailable = errors.New("reassignment service unavailable")
	ErrUnknownGateway     = errors.New("unknown gateway mode")
	ErrUnknownPacing      = errors.New("unknown pacing mode")

	ErrInvalidPacingInterval = errors.New("fixed pacing needs a positive interval")
)

// IsValidation reports whether err is a precondition failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
