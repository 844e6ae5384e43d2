package srs

import (
	"math"
	"time"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// predictMasteryDate projects when a card will reach mastery: at least
// MasteryMinReviews completed reviews with accuracy at or above
// MasteryAccuracy. Cards already past that bar master today.
//
// The projection walks the canonical interval progression starting at the
// card's current review count and sums the remaining entries, reusing the
// last entry once the progression is exhausted. Cards tracking below the
// accuracy bar need extra reviews, so the remaining count is inflated by
// StruggleInflation (rounded up). Cards with no history are assumed to be
// coin-flip accurate.
func predictMasteryDate(card *domain.Card, now time.Time, params *Params) time.Time {
	today := startOfDayUTC(now)

	accuracy := 0.5
	if card.TimesReviewed > 0 {
		accuracy = card.Accuracy()
	}

	if card.TimesReviewed >= params.MasteryMinReviews && accuracy >= params.MasteryAccuracy {
		return today
	}

	reviewsNeeded := params.MasteryMinReviews - card.TimesReviewed
	if reviewsNeeded < 0 {
		reviewsNeeded = 0
	}
	if accuracy < params.MasteryAccuracy {
		reviewsNeeded = int(math.Ceil(float64(reviewsNeeded) * params.StruggleInflation))
	}

	days := 0
	for i := 0; i < reviewsNeeded; i++ {
		idx := card.TimesReviewed + i
		if idx >= len(params.MasteryIntervals) {
			idx = len(params.MasteryIntervals) - 1
		}
		days += params.MasteryIntervals[idx]
	}

	return today.AddDate(0, 0, days)
}
