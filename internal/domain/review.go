package domain

import "time"

// Quality is the learner's self-reported recall grade for a single review:
// 0 means no recall at all, 5 means perfect instant recall.
type Quality int

// Boundary values of the quality scale.
const (
	QualityMin Quality = 0
	QualityMax Quality = 5
)

// IsValid reports whether q is within the documented [0, 5] scale.
func (q Quality) IsValid() bool {
	return q >= QualityMin && q <= QualityMax
}

// IsCorrect reports whether the grade counts as a successful recall.
// Grades of 3 and above are correct.
func (q Quality) IsCorrect() bool {
	return q >= 3
}

// ReviewResult is the outcome of scheduling a single review. It is a value
// to be merged into the stored card by the caller, not a mutation of the
// input card.
type ReviewResult struct {
	NextReview    time.Time  `json:"next_review"`    // UTC midnight of the scheduled day
	IntervalDays  int        `json:"interval_days"`  // Always within [1, 365]
	NewDifficulty Difficulty `json:"new_difficulty"` // At most one tier away from the old
	EaseFactor    float64    `json:"ease_factor"`    // Never below 1.3
}
