package srs

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// Common errors
var (
	ErrNilCard          = errors.New("card cannot be nil")
	ErrInvalidQuality   = errors.New("quality rating must be between 0 and 5")
	ErrInvalidDays      = errors.New("postpone days must be at least 1")
	ErrCardNotScheduled = errors.New("card has no scheduled review to postpone")
)

// Service defines the interface for the scheduling engine. All operations
// are pure: they read their arguments and the supplied current time, and
// return new values without mutating any input. Callers are responsible for
// serializing concurrent read-compute-write cycles on the same card.
type Service interface {
	// CalculateNextReview computes the scheduling outcome of one review:
	// new ease factor, interval, next review date, and difficulty tier.
	CalculateNextReview(
		card *domain.Card,
		quality domain.Quality,
		now time.Time,
	) (*domain.ReviewResult, error)

	// PostponeReview pushes the card's next review forward by a number of
	// days without touching its counters, returning an updated copy.
	PostponeReview(
		card *domain.Card,
		days int,
		now time.Time,
	) (*domain.Card, error)

	// StudyOrder builds a flat study queue over the given cards: overdue
	// first, then due today with new cards interleaved, then the rest.
	StudyOrder(cards []domain.Card, now time.Time) ([]uuid.UUID, error)

	// PredictMasteryDate projects the date the card reaches mastery.
	PredictMasteryDate(card *domain.Card, now time.Time) (time.Time, error)

	// CalculateStreak reduces a session log to streak statistics.
	CalculateStreak(sessions []domain.StudySession, now time.Time) *domain.StreakStats
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new scheduling service with default parameters.
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new scheduling service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: params,
	}
}

// CalculateNextReview implements the Service interface for review scheduling.
func (s *defaultService) CalculateNextReview(
	card *domain.Card,
	quality domain.Quality,
	now time.Time,
) (*domain.ReviewResult, error) {
	if card == nil {
		return nil, ErrNilCard
	}
	if !quality.IsValid() {
		return nil, ErrInvalidQuality
	}
	if err := card.Validate(); err != nil {
		return nil, err
	}

	return calculateReview(card, quality, now, s.params), nil
}

// PostponeReview implements the Service interface for postponing reviews.
func (s *defaultService) PostponeReview(
	card *domain.Card,
	days int,
	now time.Time,
) (*domain.Card, error) {
	if card == nil {
		return nil, ErrNilCard
	}
	if days < 1 {
		return nil, ErrInvalidDays
	}
	if card.NextReview.IsZero() {
		return nil, ErrCardNotScheduled
	}

	postponed := *card
	postponed.NextReview = startOfDayUTC(card.NextReview).AddDate(0, 0, days)

	return &postponed, nil
}

// StudyOrder implements the Service interface for study queue construction.
func (s *defaultService) StudyOrder(cards []domain.Card, now time.Time) ([]uuid.UUID, error) {
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return nil, fmt.Errorf("card %s: %w", cards[i].ID, err)
		}
	}

	return buildStudyOrder(cards, now, s.params), nil
}

// PredictMasteryDate implements the Service interface for mastery projection.
func (s *defaultService) PredictMasteryDate(card *domain.Card, now time.Time) (time.Time, error) {
	if card == nil {
		return time.Time{}, ErrNilCard
	}
	if err := card.Validate(); err != nil {
		return time.Time{}, err
	}

	return predictMasteryDate(card, now, s.params), nil
}

// CalculateStreak implements the Service interface for streak statistics.
func (s *defaultService) CalculateStreak(
	sessions []domain.StudySession,
	now time.Time,
) *domain.StreakStats {
	return calculateStreak(sessions, now)
}
