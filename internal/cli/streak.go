package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

func init() {
	cmd := &cobra.Command{
		Use:   "streak [sessions.json]",
		Short: "Compute study streaks from a session log",
		Long: "Reduce a JSON array of study sessions to current streak, longest " +
			"streak, and last study date.",
		Args: cobra.ExactArgs(1),
		Run:  runStreak,
	}

	RootCmd.AddCommand(cmd)
}

func runStreak(cmd *cobra.Command, args []string) {
	var sessions []domain.StudySession
	if err := loadJSON(args[0], &sessions); err != nil {
		exitErr("load sessions", err)
	}

	service, _, err := newEngine()
	if err != nil {
		exitErr("init engine", err)
	}

	stats := service.CalculateStreak(sessions, time.Now().UTC())

	printJSON(stats)
}
