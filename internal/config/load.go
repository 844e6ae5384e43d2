package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables (prefixed STUDYSYNC_, with dots replaced by
// underscores) take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults. The zero-valued srs keys exist so viper knows about them;
	// env-only overrides are not unmarshaled for unregistered keys.
	v.SetDefault("log.level", "info")
	for _, key := range []string{
		"easy_baseline_ease", "medium_baseline_ease", "hard_baseline_ease",
		"min_ease_factor", "min_interval_days", "max_interval_days",
		"second_review_interval", "min_reviews_to_adapt",
		"promote_threshold", "demote_threshold", "perfect_recall_floor",
		"mastery_min_reviews", "mastery_accuracy", "struggle_inflation",
		"new_card_gap",
	} {
		v.SetDefault("srs."+key, 0)
	}

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment variables: STUDYSYNC_LOG_LEVEL, STUDYSYNC_SRS_NEW_CARD_GAP, ...
	v.SetEnvPrefix("STUDYSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults still apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
