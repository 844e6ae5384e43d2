package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "mastery",
		Short: "Project when a card reaches mastery",
		Run:   runMastery,
	}

	cmd.Flags().String("difficulty", "medium", "Card difficulty tier: easy, medium, or hard")
	cmd.Flags().Int("times-reviewed", 0, "Completed reviews so far")
	cmd.Flags().Int("correct-count", 0, "Correct reviews so far")
	cmd.Flags().String("last-reviewed", "", "Date of the previous review (YYYY-MM-DD)")
	cmd.Flags().String("next-review", "", "Previously scheduled review date (YYYY-MM-DD)")

	RootCmd.AddCommand(cmd)
}

func runMastery(cmd *cobra.Command, args []string) {
	card, err := cardFromFlags(cmd)
	if err != nil {
		exitErr("build card", err)
	}

	service, _, err := newEngine()
	if err != nil {
		exitErr("init engine", err)
	}

	date, err := service.PredictMasteryDate(card, time.Now().UTC())
	if err != nil {
		exitErr("predict mastery", err)
	}

	fmt.Println(date.Format(dateFormat))
}
