package srs

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// difficultyRank orders tiers for queue construction: harder material is
// front-loaded while attention is fresh.
var difficultyRank = map[domain.Difficulty]int{
	domain.DifficultyHard:   0,
	domain.DifficultyMedium: 1,
	domain.DifficultyEasy:   2,
}

// plannerEntry pairs a card with its overdue distance as of the planning
// time, so partitioning and sorting only compute day arithmetic once.
type plannerEntry struct {
	card        domain.Card
	overdueDays int
}

// buildStudyOrder produces a single flat study queue over the given cards:
//
//  1. Overdue cards first, most overdue first.
//  2. Due-today cards next, hardest tier first, with one new card
//     interleaved after every NewCardGap due-today cards.
//  3. Any new cards left over, in their original relative order.
//  4. Cards scheduled beyond today last, soonest first.
//
// Ties within the overdue, due-today, and future groups break on the card
// ID string so the queue is deterministic. Every input card appears exactly
// once in the output.
func buildStudyOrder(cards []domain.Card, now time.Time, params *Params) []uuid.UUID {
	var (
		overdue []plannerEntry
		due     []plannerEntry
		future  []plannerEntry
		fresh   []domain.Card
	)

	for _, card := range cards {
		if card.IsNew() {
			fresh = append(fresh, card)
			continue
		}

		entry := plannerEntry{card: card, overdueDays: daysBetween(card.NextReview, now)}
		switch {
		case entry.overdueDays >= 1:
			overdue = append(overdue, entry)
		case entry.overdueDays == 0:
			due = append(due, entry)
		default:
			future = append(future, entry)
		}
	}

	sort.Slice(overdue, func(i, j int) bool {
		if overdue[i].overdueDays != overdue[j].overdueDays {
			return overdue[i].overdueDays > overdue[j].overdueDays
		}
		return overdue[i].card.ID.String() < overdue[j].card.ID.String()
	})

	sort.Slice(due, func(i, j int) bool {
		ri, rj := difficultyRank[due[i].card.Difficulty], difficultyRank[due[j].card.Difficulty]
		if ri != rj {
			return ri < rj
		}
		return due[i].card.ID.String() < due[j].card.ID.String()
	})

	sort.Slice(future, func(i, j int) bool {
		if !future[i].card.NextReview.Equal(future[j].card.NextReview) {
			return future[i].card.NextReview.Before(future[j].card.NextReview)
		}
		return future[i].card.ID.String() < future[j].card.ID.String()
	})

	order := make([]uuid.UUID, 0, len(cards))

	for _, entry := range overdue {
		order = append(order, entry.card.ID)
	}

	// Interleave one new card after every NewCardGap due-today cards.
	nextFresh := 0
	for i, entry := range due {
		order = append(order, entry.card.ID)
		if (i+1)%params.NewCardGap == 0 && nextFresh < len(fresh) {
			order = append(order, fresh[nextFresh].ID)
			nextFresh++
		}
	}

	for ; nextFresh < len(fresh); nextFresh++ {
		order = append(order, fresh[nextFresh].ID)
	}

	for _, entry := range future {
		order = append(order, entry.card.ID)
	}

	return order
}
