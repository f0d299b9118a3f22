package utils

import "errors"

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrUsernameAlreadyExists = errors.New("username already taken")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrInvalidResetToken     = errors.New("invalid or expired reset token")

	ErrTripNotFound        = errors.New("trip not found")
	ErrTripNotGenerated    = errors.New("trip has no itinerary yet")
	ErrChatSessionNotFound = errors.New("chat session not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrForbidden           = errors.New("forbidden")

	ErrExportNotPurchased = errors.New("pdf export has not been purchased for this trip")
	ErrPaymentProvider    = errors.New("payment provider error")

	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
