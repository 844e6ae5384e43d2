package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCards(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("valid fixture", func(t *testing.T) {
		path := filepath.Join(dir, "cards.json")
		fixture := `[
			{
				"id": "7b1ffcb0-17b6-4e11-9b3c-6a9b4f3d2e10",
				"difficulty": "hard",
				"times_reviewed": 3,
				"correct_count": 2,
				"last_reviewed": "2026-08-10T00:00:00Z",
				"next_review": "2026-08-16T00:00:00Z"
			},
			{
				"id": "1a9f2c44-5d0e-4f7a-8b36-2c1d3e4f5a6b",
				"difficulty": "medium",
				"times_reviewed": 0,
				"correct_count": 0
			}
		]`
		require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

		cards, err := loadCards(path)
		require.NoError(t, err)
		require.Len(t, cards, 2)
		require.Equal(t, 3, cards[0].TimesReviewed)
		require.True(t, cards[1].IsNew())
	})

	t.Run("inconsistent card is rejected", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		fixture := `[{
			"id": "7b1ffcb0-17b6-4e11-9b3c-6a9b4f3d2e10",
			"difficulty": "easy",
			"times_reviewed": 1,
			"correct_count": 2
		}]`
		require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

		_, err := loadCards(path)
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loadCards(filepath.Join(dir, "nope.json"))
		require.Error(t, err)
	})
}
