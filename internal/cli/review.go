package cli

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

func init() {
	cmd := &cobra.Command{
		Use:   "review [quality]",
		Short: "Simulate scheduling a single review",
		Long: "Compute the next review date, interval, ease factor, and difficulty " +
			"for a card state given a 0-5 quality rating.",
		Args: cobra.ExactArgs(1),
		Run:  runReview,
	}

	cmd.Flags().String("difficulty", "medium", "Card difficulty tier: easy, medium, or hard")
	cmd.Flags().Int("times-reviewed", 0, "Completed reviews before this one")
	cmd.Flags().Int("correct-count", 0, "Correct reviews before this one")
	cmd.Flags().String("last-reviewed", "", "Date of the previous review (YYYY-MM-DD)")
	cmd.Flags().String("next-review", "", "Previously scheduled review date (YYYY-MM-DD)")

	RootCmd.AddCommand(cmd)
}

// cardFromFlags assembles a card state from the shared review/mastery flags.
func cardFromFlags(cmd *cobra.Command) (*domain.Card, error) {
	difficulty, _ := cmd.Flags().GetString("difficulty")
	timesReviewed, _ := cmd.Flags().GetInt("times-reviewed")
	correctCount, _ := cmd.Flags().GetInt("correct-count")
	lastReviewed, _ := cmd.Flags().GetString("last-reviewed")
	nextReview, _ := cmd.Flags().GetString("next-review")

	card := &domain.Card{
		ID:            uuid.New(),
		Difficulty:    domain.Difficulty(difficulty),
		TimesReviewed: timesReviewed,
		CorrectCount:  correctCount,
	}

	if lastReviewed != "" {
		t, err := time.Parse(dateFormat, lastReviewed)
		if err != nil {
			return nil, err
		}
		card.LastReviewed = t
	}
	if nextReview != "" {
		t, err := time.Parse(dateFormat, nextReview)
		if err != nil {
			return nil, err
		}
		card.NextReview = t
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

func runReview(cmd *cobra.Command, args []string) {
	rating, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("parse quality", err)
	}

	card, err := cardFromFlags(cmd)
	if err != nil {
		exitErr("build card", err)
	}

	service, log, err := newEngine()
	if err != nil {
		exitErr("init engine", err)
	}

	result, err := service.CalculateNextReview(card, domain.Quality(rating), time.Now().UTC())
	if err != nil {
		exitErr("calculate review", err)
	}

	log.Debug("review scheduled",
		"quality", rating,
		"interval_days", result.IntervalDays,
		"difficulty", string(result.NewDifficulty))

	printJSON(result)
}
