package domain

import "errors"

// Common domain errors used across the engine.
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrInvalidDifficulty is returned when a difficulty tier is not one of
	// easy, medium, or hard.
	ErrInvalidDifficulty = errors.New("invalid difficulty tier")

	// ErrNegativeReviewCount is returned when a card's review counter is negative.
	ErrNegativeReviewCount = errors.New("times reviewed cannot be negative")

	// ErrNegativeCorrectCount is returned when a card's correct counter is negative.
	ErrNegativeCorrectCount = errors.New("correct count cannot be negative")

	// ErrInconsistentCounts is returned when a card claims more correct
	// answers than completed reviews.
	ErrInconsistentCounts = errors.New("correct count cannot exceed times reviewed")

	// ErrInvalidQuality is returned when a quality rating is outside [0, 5].
	ErrInvalidQuality = errors.New("quality rating must be between 0 and 5")
)
