package srs

import (
	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// Params defines all configurable parameters for the scheduling engine.
type Params struct {
	// Ease baseline per difficulty tier. The tier encodes the ease factor;
	// ease is derived from it on every call rather than persisted per card,
	// which keeps stored ease and stored tier from drifting apart.
	BaselineEase map[domain.Difficulty]float64

	// Core limits
	MinEaseFactor   float64
	MinIntervalDays int
	MaxIntervalDays int

	// Interval for the second successful review (and for recovery from a
	// prior reset).
	SecondReviewInterval int

	// Difficulty adaptation. A card's tier never moves before it has
	// accumulated MinReviewsToAdapt total reviews, counting the current one.
	MinReviewsToAdapt  int
	PromoteThreshold   float64 // Success rate at or above which the tier steps down
	DemoteThreshold    float64 // Success rate below which the tier steps up
	PerfectRecallFloor float64 // Success rate required for a quality-5 step down

	// Mastery projection
	MasteryMinReviews int
	MasteryAccuracy   float64
	MasteryIntervals  []int   // Canonical interval progression in days
	StruggleInflation float64 // Multiplier on remaining reviews when accuracy is low

	// Study queue construction: one new card is interleaved after every
	// NewCardGap due-today cards.
	NewCardGap int
}

// ParamsConfig allows overriding the default parameters when creating a new
// Params instance. Zero values keep the defaults.
type ParamsConfig struct {
	EasyBaselineEase   float64
	MediumBaselineEase float64
	HardBaselineEase   float64

	MinEaseFactor   float64
	MinIntervalDays int
	MaxIntervalDays int

	SecondReviewInterval int

	MinReviewsToAdapt  int
	PromoteThreshold   float64
	DemoteThreshold    float64
	PerfectRecallFloor float64

	MasteryMinReviews int
	MasteryAccuracy   float64
	MasteryIntervals  []int
	StruggleInflation float64

	NewCardGap int
}

// NewDefaultParams creates a new Params instance with default values.
func NewDefaultParams() *Params {
	return &Params{
		BaselineEase: map[domain.Difficulty]float64{
			domain.DifficultyEasy:   2.8,
			domain.DifficultyMedium: 2.5,
			domain.DifficultyHard:   2.0,
		},

		MinEaseFactor:   1.3,
		MinIntervalDays: 1,
		MaxIntervalDays: 365,

		SecondReviewInterval: 6,

		MinReviewsToAdapt:  3,
		PromoteThreshold:   0.9,
		DemoteThreshold:    0.5,
		PerfectRecallFloor: 0.8,

		MasteryMinReviews: 5,
		MasteryAccuracy:   0.8,
		MasteryIntervals:  []int{1, 6, 15, 36, 90},
		StruggleInflation: 1.5,

		NewCardGap: 3,
	}
}

// NewParams creates a new Params instance with custom configuration.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override ease baselines if provided
	if config.EasyBaselineEase > 0 {
		params.BaselineEase[domain.DifficultyEasy] = config.EasyBaselineEase
	}
	if config.MediumBaselineEase > 0 {
		params.BaselineEase[domain.DifficultyMedium] = config.MediumBaselineEase
	}
	if config.HardBaselineEase > 0 {
		params.BaselineEase[domain.DifficultyHard] = config.HardBaselineEase
	}

	// Override core limits if provided
	if config.MinEaseFactor > 0 {
		params.MinEaseFactor = config.MinEaseFactor
	}
	if config.MinIntervalDays > 0 {
		params.MinIntervalDays = config.MinIntervalDays
	}
	if config.MaxIntervalDays > 0 {
		params.MaxIntervalDays = config.MaxIntervalDays
	}

	if config.SecondReviewInterval > 0 {
		params.SecondReviewInterval = config.SecondReviewInterval
	}

	// Override adaptation settings if provided
	if config.MinReviewsToAdapt > 0 {
		params.MinReviewsToAdapt = config.MinReviewsToAdapt
	}
	if config.PromoteThreshold > 0 {
		params.PromoteThreshold = config.PromoteThreshold
	}
	if config.DemoteThreshold > 0 {
		params.DemoteThreshold = config.DemoteThreshold
	}
	if config.PerfectRecallFloor > 0 {
		params.PerfectRecallFloor = config.PerfectRecallFloor
	}

	// Override mastery settings if provided
	if config.MasteryMinReviews > 0 {
		params.MasteryMinReviews = config.MasteryMinReviews
	}
	if config.MasteryAccuracy > 0 {
		params.MasteryAccuracy = config.MasteryAccuracy
	}
	if len(config.MasteryIntervals) > 0 {
		params.MasteryIntervals = config.MasteryIntervals
	}
	if config.StruggleInflation > 0 {
		params.StruggleInflation = config.StruggleInflation
	}

	if config.NewCardGap > 0 {
		params.NewCardGap = config.NewCardGap
	}

	return params
}
