package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// chdir switches the working directory for the duration of a test so Load
// picks up (or misses) config files deterministically.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(orig))
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "info", cfg.Log.Level)
	require.Zero(t, cfg.SRS.NewCardGap)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STUDYSYNC_LOG_LEVEL", "debug")
	t.Setenv("STUDYSYNC_SRS_NEW_CARD_GAP", "5")
	t.Setenv("STUDYSYNC_SRS_MAX_INTERVAL_DAYS", "180")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, 5, cfg.SRS.NewCardGap)
	require.Equal(t, 180, cfg.SRS.MaxIntervalDays)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("log:\n  level: warn\nsrs:\n  second_review_interval: 4\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))
	chdir(t, dir)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "warn", cfg.Log.Level)
	require.Equal(t, 4, cfg.SRS.SecondReviewInterval)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("log:\n  level: warn\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))
	chdir(t, dir)
	t.Setenv("STUDYSYNC_LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "unknown log level", key: "STUDYSYNC_LOG_LEVEL", value: "verbose"},
		{name: "promote threshold above one", key: "STUDYSYNC_SRS_PROMOTE_THRESHOLD", value: "1.5"},
		{name: "ease floor below one", key: "STUDYSYNC_SRS_MIN_EASE_FACTOR", value: "0.5"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chdir(t, t.TempDir())
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
		})
	}
}

func TestParamsConfigMapping(t *testing.T) {
	t.Parallel()

	srsCfg := SRSConfig{
		HardBaselineEase: 2.1,
		NewCardGap:       4,
		MasteryAccuracy:  0.85,
	}

	pc := srsCfg.ParamsConfig()

	require.Equal(t, 2.1, pc.HardBaselineEase)
	require.Equal(t, 4, pc.NewCardGap)
	require.Equal(t, 0.85, pc.MasteryAccuracy)
	require.Zero(t, pc.MinEaseFactor)
}
