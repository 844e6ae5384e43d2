package srs

import (
	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// calculateNewDifficulty reclassifies a card's difficulty tier from its
// accumulated performance and the current review quality.
//
// Tiers move at most one step per review, and never before the card has
// accumulated MinReviewsToAdapt total reviews including the current one.
// That hysteresis keeps sparse early history from bouncing a card between
// tiers.
//
// The rules below are evaluated top to bottom and the first match wins;
// the order matters. A catastrophic single failure (quality <= 1) escalates
// the tier even when the running success rate is still healthy, but only
// after the high-success and low-success rules have had their say. A card
// never steps easier on a failed recall, however strong its running
// average.
func calculateNewDifficulty(card *domain.Card, quality domain.Quality, params *Params) domain.Difficulty {
	totalReviews := card.TimesReviewed + 1
	if totalReviews < params.MinReviewsToAdapt {
		return card.Difficulty
	}

	correct := card.CorrectCount
	if quality.IsCorrect() {
		correct++
	}
	successRate := float64(correct) / float64(totalReviews)

	tier := card.Difficulty
	switch {
	case quality.IsCorrect() && successRate >= params.PromoteThreshold && tier != domain.DifficultyEasy:
		return tier.Easier()
	case successRate < params.DemoteThreshold && tier != domain.DifficultyHard:
		return tier.Harder()
	case quality <= 1 && tier != domain.DifficultyHard:
		return tier.Harder()
	case quality == domain.QualityMax && tier != domain.DifficultyEasy && successRate >= params.PerfectRecallFloor:
		return tier.Easier()
	default:
		return tier
	}
}
