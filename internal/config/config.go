package config

import (
	"github.com/Sakeeb91/StudySync-sub000/internal/domain/srs"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Log LogConfig `mapstructure:"log" validate:"required"`
	SRS SRSConfig `mapstructure:"srs"`
}

// LogConfig contains logging-related configuration settings.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// SRSConfig exposes the scheduling engine tunables. Zero values fall back
// to the engine defaults, so an empty section is a valid configuration.
type SRSConfig struct {
	EasyBaselineEase   float64 `mapstructure:"easy_baseline_ease"   validate:"omitempty,gt=1"`
	MediumBaselineEase float64 `mapstructure:"medium_baseline_ease" validate:"omitempty,gt=1"`
	HardBaselineEase   float64 `mapstructure:"hard_baseline_ease"   validate:"omitempty,gt=1"`

	MinEaseFactor   float64 `mapstructure:"min_ease_factor"   validate:"omitempty,gt=1"`
	MinIntervalDays int     `mapstructure:"min_interval_days" validate:"omitempty,gte=1"`
	MaxIntervalDays int     `mapstructure:"max_interval_days" validate:"omitempty,gte=1,lte=3650"`

	SecondReviewInterval int `mapstructure:"second_review_interval" validate:"omitempty,gte=1"`

	MinReviewsToAdapt  int     `mapstructure:"min_reviews_to_adapt" validate:"omitempty,gte=1"`
	PromoteThreshold   float64 `mapstructure:"promote_threshold"    validate:"omitempty,gt=0,lte=1"`
	DemoteThreshold    float64 `mapstructure:"demote_threshold"     validate:"omitempty,gt=0,lte=1"`
	PerfectRecallFloor float64 `mapstructure:"perfect_recall_floor" validate:"omitempty,gt=0,lte=1"`

	MasteryMinReviews int     `mapstructure:"mastery_min_reviews" validate:"omitempty,gte=1"`
	MasteryAccuracy   float64 `mapstructure:"mastery_accuracy"    validate:"omitempty,gt=0,lte=1"`
	StruggleInflation float64 `mapstructure:"struggle_inflation"  validate:"omitempty,gte=1"`

	NewCardGap int `mapstructure:"new_card_gap" validate:"omitempty,gte=1"`
}

// ParamsConfig maps the configured tunables onto the engine's override
// struct. Zero values keep the engine defaults.
func (c SRSConfig) ParamsConfig() srs.ParamsConfig {
	return srs.ParamsConfig{
		EasyBaselineEase:   c.EasyBaselineEase,
		MediumBaselineEase: c.MediumBaselineEase,
		HardBaselineEase:   c.HardBaselineEase,

		MinEaseFactor:   c.MinEaseFactor,
		MinIntervalDays: c.MinIntervalDays,
		MaxIntervalDays: c.MaxIntervalDays,

		SecondReviewInterval: c.SecondReviewInterval,

		MinReviewsToAdapt:  c.MinReviewsToAdapt,
		PromoteThreshold:   c.PromoteThreshold,
		DemoteThreshold:    c.DemoteThreshold,
		PerfectRecallFloor: c.PerfectRecallFloor,

		MasteryMinReviews: c.MasteryMinReviews,
		MasteryAccuracy:   c.MasteryAccuracy,
		StruggleInflation: c.StruggleInflation,

		NewCardGap: c.NewCardGap,
	}
}
