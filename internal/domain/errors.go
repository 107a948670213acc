package domain

import "errors"

var (
	// Range and input errors
	ErrInvalidRange  = errors.New("end date is before start date")
	ErrInvalidAmount = errors.New("amount must be positive")
	ErrInvalidRate   = errors.New("invalid rate")
	ErrUnknownIndex  = errors.New("unknown correction index")

	// Rate resolution errors
	ErrRateResolution  = errors.New("failed to resolve index rate")
	ErrConflictingRate = errors.New("index already includes interest, cannot apply interest on top")

	// Settlement errors
	ErrFutureDueDate = errors.New("cash-flow item due after calculation date")

	// Internal invariant violations
	ErrMisalignedSequence = errors.New("correction and interest sequences do not share the same periods")

	// Persistence errors
	ErrCalculationNotFound = errors.New("calculation not found")
)
