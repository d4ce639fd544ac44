package domain

import "errors"

// Not-found errors.
var (
	ErrBicycleNotFound     = errors.New("bicycle not found")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrEventNotFound       = errors.New("event not found")
	ErrMaintenanceNotFound = errors.New("maintenance log not found")
	ErrRegionalNotFound    = errors.New("regional not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrPhotoNotFound       = errors.New("photo not found")
)

// Precondition violations. These are expected, user-recoverable rejections,
// not defects; callers surface them with a 409-class response and never retry
// automatically.
var (
	ErrBicycleNotAvailable = errors.New("bicycle is not available for rental")
	ErrInvalidTransition   = errors.New("bicycle status transition not allowed")
	ErrUserHasActiveRental = errors.New("user already has an active rental")
	ErrRentalNotActive     = errors.New("rental is not active")
	ErrEventNotPublished   = errors.New("event is not accepting registrations")
	ErrEventInPast         = errors.New("event has already occurred")
	ErrEventFull           = errors.New("event has reached its participant limit")
	ErrAlreadyRegistered   = errors.New("user is already registered for this event")
	ErrNotRegistered       = errors.New("user is not registered for this event")
	ErrMaintenanceDone     = errors.New("maintenance log is already completed")
	ErrDuplicateCode       = errors.New("bicycle code already exists")
	ErrEmailTaken          = errors.New("email is already registered")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrAccountDisabled    = errors.New("account is disabled")
)
