package cli

import (
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "plan [cards.json]",
		Short: "Build a study queue from a card fixture",
		Long: "Order a JSON array of card states into a study queue: overdue cards " +
			"first, then cards due today with new cards interleaved.",
		Args: cobra.ExactArgs(1),
		Run:  runPlan,
	}

	RootCmd.AddCommand(cmd)
}

func runPlan(cmd *cobra.Command, args []string) {
	cards, err := loadCards(args[0])
	if err != nil {
		exitErr("load cards", err)
	}

	service, log, err := newEngine()
	if err != nil {
		exitErr("init engine", err)
	}

	order, err := service.StudyOrder(cards, time.Now().UTC())
	if err != nil {
		exitErr("build study order", err)
	}

	log.Debug("study queue built", "cards", len(cards))

	printJSON(order)
}
