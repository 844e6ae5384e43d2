// Package cli implements the studysync CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sakeeb91/StudySync-sub000/internal/config"
	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
	"github.com/Sakeeb91/StudySync-sub000/internal/domain/srs"
	"github.com/Sakeeb91/StudySync-sub000/internal/platform/logger"
)

// dateFormat is how the CLI reads and writes day-granular timestamps.
const dateFormat = "2006-01-02"

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "studysync",
	Short: "Spaced-repetition scheduling tools",
	Long: "Offline tools for the StudySync scheduling engine: simulate reviews, " +
		"build study queues, and report mastery and streaks from JSON fixtures.",
}

// newEngine loads configuration, initializes logging, and constructs the
// scheduling service every command runs against.
func newEngine() (srs.Service, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Log)
	service := srs.NewServiceWithParams(srs.NewParams(cfg.SRS.ParamsConfig()))

	return service, log, nil
}

// loadJSON reads a JSON fixture file into out.
func loadJSON(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// loadCards reads a JSON array of cards from a fixture file and validates
// each entry before handing it to the engine.
func loadCards(path string) ([]domain.Card, error) {
	var cards []domain.Card
	if err := loadJSON(path, &cards); err != nil {
		return nil, err
	}
	for i := range cards {
		if err := cards[i].Validate(); err != nil {
			return nil, fmt.Errorf("card %s: %w", cards[i].ID, err)
		}
	}
	return cards, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
