package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

func TestBuildStudyOrder(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	dueCard := func(difficulty domain.Difficulty, nextReview time.Time) domain.Card {
		return domain.Card{
			ID:            uuid.New(),
			Difficulty:    difficulty,
			TimesReviewed: 3,
			CorrectCount:  2,
			LastReviewed:  nextReview.AddDate(0, 0, -6),
			NextReview:    nextReview,
		}
	}
	newCard := func() domain.Card {
		return domain.Card{ID: uuid.New(), Difficulty: domain.DifficultyMedium}
	}

	t.Run("overdue then due with new cards interleaved", func(t *testing.T) {
		overdue2 := dueCard(domain.DifficultyMedium, today.AddDate(0, 0, -2))
		overdue5 := dueCard(domain.DifficultyMedium, today.AddDate(0, 0, -5))
		hard1 := dueCard(domain.DifficultyHard, today)
		hard2 := dueCard(domain.DifficultyHard, today)
		easy1 := dueCard(domain.DifficultyEasy, today)
		easy2 := dueCard(domain.DifficultyEasy, today)
		new1, new2, new3 := newCard(), newCard(), newCard()

		cards := []domain.Card{easy1, new1, overdue2, hard1, new2, overdue5, easy2, hard2, new3}

		order := buildStudyOrder(cards, now, params)
		require.Len(t, order, len(cards))

		// Most overdue first.
		require.Equal(t, overdue5.ID, order[0])
		require.Equal(t, overdue2.ID, order[1])

		// Due today: hard before easy, one new card after the third due card,
		// remaining new cards appended in original order.
		require.ElementsMatch(t, []uuid.UUID{hard1.ID, hard2.ID}, []uuid.UUID{order[2], order[3]})
		require.Equal(t, new1.ID, order[5])
		require.ElementsMatch(t, []uuid.UUID{easy1.ID, easy2.ID}, []uuid.UUID{order[4], order[6]})
		require.Equal(t, new2.ID, order[7])
		require.Equal(t, new3.ID, order[8])
	})

	t.Run("never drops or duplicates a card", func(t *testing.T) {
		var cards []domain.Card
		for i := 0; i < 4; i++ {
			cards = append(cards,
				dueCard(domain.DifficultyHard, today.AddDate(0, 0, -i-1)),
				dueCard(domain.DifficultyMedium, today),
				dueCard(domain.DifficultyEasy, today.AddDate(0, 0, i+2)),
				newCard(),
			)
		}

		order := buildStudyOrder(cards, now, params)

		require.Len(t, order, len(cards))
		seen := make(map[uuid.UUID]bool, len(order))
		for _, id := range order {
			require.False(t, seen[id], "card %s appears twice", id)
			seen[id] = true
		}
		for _, card := range cards {
			require.True(t, seen[card.ID], "card %s was dropped", card.ID)
		}
	})

	t.Run("future cards come after everything else", func(t *testing.T) {
		later := dueCard(domain.DifficultyMedium, today.AddDate(0, 0, 9))
		soon := dueCard(domain.DifficultyMedium, today.AddDate(0, 0, 3))
		due := dueCard(domain.DifficultyMedium, today)
		fresh := newCard()

		order := buildStudyOrder([]domain.Card{later, fresh, soon, due}, now, params)

		require.Equal(t, []uuid.UUID{due.ID, fresh.ID, soon.ID, later.ID}, order)
	})

	t.Run("no due cards leaves new cards in input order", func(t *testing.T) {
		fresh := []domain.Card{newCard(), newCard(), newCard()}

		order := buildStudyOrder(fresh, now, params)

		require.Equal(t, []uuid.UUID{fresh[0].ID, fresh[1].ID, fresh[2].ID}, order)
	})

	t.Run("empty input yields empty order", func(t *testing.T) {
		order := buildStudyOrder(nil, now, params)
		require.Empty(t, order)
	})
}

// TestBuildStudyOrderDeterministic checks that two runs over permuted input
// produce the identical queue: ties inside each group break on card ID.
func TestBuildStudyOrderDeterministic(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()
	now := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	var cards []domain.Card
	for i := 0; i < 6; i++ {
		cards = append(cards, domain.Card{
			ID:            uuid.New(),
			Difficulty:    domain.DifficultyMedium,
			TimesReviewed: 2,
			CorrectCount:  1,
			LastReviewed:  today.AddDate(0, 0, -8),
			NextReview:    today.AddDate(0, 0, -2),
		})
	}

	first := buildStudyOrder(cards, now, params)

	// Reverse the input; equally overdue cards must still come out in the
	// same ID order.
	reversed := make([]domain.Card, len(cards))
	for i, card := range cards {
		reversed[len(cards)-1-i] = card
	}
	second := buildStudyOrder(reversed, now, params)

	require.Equal(t, first, second)
}
