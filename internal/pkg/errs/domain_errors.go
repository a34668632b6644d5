package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Service errors
	ErrServiceNotFound = errors.New("service not found")
	ErrServiceInactive = errors.New("service is not active")

	// Booking errors
	ErrBookingNotFound   = errors.New("booking not found")
	ErrBookingConflict   = errors.New("booking conflict")
	ErrInvalidStartTime  = errors.New("start time must be in the future")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrBookingStarted    = errors.New("booking has already started")

	// Review errors
	ErrReviewNotFound      = errors.New("review not found")
	ErrReviewAlreadyExists = errors.New("review already exists for this booking")
	ErrBookingNotCompleted = errors.New("booking is not completed")

	// User errors
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")

	// Auth errors
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenGeneration    = errors.New("token generation failed")
	ErrTokenValidation    = errors.New("token validation failed")

	// Authorization errors
	ErrForbidden = errors.New("operation not permitted")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
