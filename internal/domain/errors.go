package domain

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrPackageNotFound     = errors.New("coin package not found")
	ErrInsufficientBalance = errors.New("insufficient coin balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrZeroAmount          = errors.New("transaction amount must not be zero")
	ErrInvalidState        = errors.New("reservation is not active")
	ErrLocationUnavailable = errors.New("location is not available")
)

// ValidationError carries the human-readable reason an operation was
// rejected, e.g. the eligibility reason for a reservation attempt.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}
