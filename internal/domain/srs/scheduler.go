package srs

import (
	"math"
	"time"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// startOfDayUTC normalizes a timestamp to UTC midnight. All day-granular
// values in the engine (scheduled review dates, overdue detection, streak
// buckets) go through this so that two cards scheduled for the same day
// compare equal regardless of the time of day they were reviewed.
func startOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the number of whole calendar days from a to b (UTC),
// negative when b precedes a.
func daysBetween(a, b time.Time) int {
	return int(startOfDayUTC(b).Sub(startOfDayUTC(a)).Hours() / 24)
}

// currentIntervalDays recovers the interval the card was last scheduled
// with. The interval is not persisted directly; it is reconstructed as the
// rounded day difference between the scheduled next review and the previous
// review, floored at one day. Cards that were never reviewed or never
// scheduled have an interval of zero.
func currentIntervalDays(card *domain.Card) int {
	if card.LastReviewed.IsZero() || card.NextReview.IsZero() {
		return 0
	}

	days := int(math.Round(card.NextReview.Sub(card.LastReviewed).Hours() / 24))
	if days < 1 {
		days = 1
	}
	return days
}

// calculateEaseFactor derives the new ease factor from the tier baseline and
// the review quality using the SM-2 delta rule. The baseline comes from the
// card's difficulty tier, not from a stored per-card ease value.
//
// The delta is 0.1 - (5-q)*(0.08 + (5-q)*0.02): zero for quality 4, positive
// only for quality 5, increasingly negative below that. The result is
// clamped to the configured floor so repeated failures cannot shrink
// intervals without bound.
func calculateEaseFactor(card *domain.Card, quality domain.Quality, params *Params) float64 {
	baseline := params.BaselineEase[card.Difficulty]

	q := float64(quality)
	ease := baseline + (0.1 - (5-q)*(0.08+(5-q)*0.02))

	if ease < params.MinEaseFactor {
		ease = params.MinEaseFactor
	}
	return ease
}

// calculateIntervalDays determines the next review interval in days.
//
// Rules, in priority order:
//   - failed recall (quality < 3) resets the interval to one day
//   - the first-ever successful review schedules one day out
//   - the second review, or recovery from a prior reset, schedules the
//     configured second-review interval (six days by default)
//   - otherwise the current interval grows by the ease factor
//
// The result is always clamped to [MinIntervalDays, MaxIntervalDays].
func calculateIntervalDays(card *domain.Card, quality domain.Quality, easeFactor float64, params *Params) int {
	current := currentIntervalDays(card)

	var interval int
	switch {
	case !quality.IsCorrect():
		interval = 1
	case card.TimesReviewed == 0:
		interval = 1
	case card.TimesReviewed == 1 || current <= 1:
		interval = params.SecondReviewInterval
	default:
		interval = int(math.Round(float64(current) * easeFactor))
	}

	if interval < params.MinIntervalDays {
		interval = params.MinIntervalDays
	}
	if interval > params.MaxIntervalDays {
		interval = params.MaxIntervalDays
	}
	return interval
}

// calculateReview computes the full scheduling outcome for one review: new
// ease factor, new interval, next review date, and adapted difficulty tier.
// It is a pure function of its arguments; the caller supplies the current
// time and merges the result into persisted card state.
func calculateReview(
	card *domain.Card,
	quality domain.Quality,
	now time.Time,
	params *Params,
) *domain.ReviewResult {
	easeFactor := calculateEaseFactor(card, quality, params)
	intervalDays := calculateIntervalDays(card, quality, easeFactor, params)

	return &domain.ReviewResult{
		NextReview:    startOfDayUTC(now).AddDate(0, 0, intervalDays),
		IntervalDays:  intervalDays,
		NewDifficulty: calculateNewDifficulty(card, quality, params),
		EaseFactor:    easeFactor,
	}
}
