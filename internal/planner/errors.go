package planner

import "errors"

var (
	// Structural validation failures. Fatal, never retried.
	ErrMissingDays = errors.New("invalid itinerary: missing days array")
	ErrInvalidDate = errors.New("invalid date format")

	// The provider answered but the payload is not parseable JSON.
	ErrMalformedOutput = errors.New("model returned malformed output")

	// Terminal provider failures, classified by the same transient markers
	// the retry policy uses.
	ErrServiceOverloaded = errors.New("the AI service is temporarily overloaded, please try again in a few moments")
	ErrTooManyRequests   = errors.New("too many requests, please wait a moment and try again")
	ErrGenerationFailed  = errors.New("failed to generate itinerary")
)
