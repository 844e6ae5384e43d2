package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card holds the scheduling state of a single flashcard. The engine reads
// this state and returns a ReviewResult; it never mutates a Card in place.
// The caller merges the result back into storage (incrementing counters and
// overwriting difficulty, LastReviewed, and NextReview).
type Card struct {
	ID            uuid.UUID  `json:"id"`
	Difficulty    Difficulty `json:"difficulty"`
	TimesReviewed int        `json:"times_reviewed"` // Completed reviews
	CorrectCount  int        `json:"correct_count"`  // Reviews with quality >= 3
	LastReviewed  time.Time  `json:"last_reviewed"`  // Zero value: never reviewed
	NextReview    time.Time  `json:"next_review"`    // Zero value: never scheduled
}

// NewCard creates a card in its initial state: zeroed counters, never
// reviewed, available immediately. Returns an error if the tier is invalid.
func NewCard(difficulty Difficulty) (*Card, error) {
	card := &Card{
		ID:         uuid.New(),
		Difficulty: difficulty,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks that the card's scheduling state is internally consistent.
// The engine assumes validated input; out-of-domain state must be rejected
// here rather than silently coerced during calculation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if !c.Difficulty.IsValid() {
		return ErrInvalidDifficulty
	}

	if c.TimesReviewed < 0 {
		return ErrNegativeReviewCount
	}

	if c.CorrectCount < 0 {
		return ErrNegativeCorrectCount
	}

	if c.CorrectCount > c.TimesReviewed {
		return ErrInconsistentCounts
	}

	return nil
}

// IsNew reports whether the card has never entered the review cycle.
func (c *Card) IsNew() bool {
	return c.TimesReviewed == 0 || c.NextReview.IsZero()
}

// Accuracy returns the fraction of completed reviews answered correctly.
// Cards with no history return 0.
func (c *Card) Accuracy() float64 {
	if c.TimesReviewed == 0 {
		return 0
	}
	return float64(c.CorrectCount) / float64(c.TimesReviewed)
}
