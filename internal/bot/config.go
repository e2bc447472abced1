package bot

import (
	"os"
	"strconv"

	"github.com/example/hifzbot/internal/review"
	"github.com/example/hifzbot/internal/rotation"
)

// BotConfig represents the configuration for the bot
type BotConfig struct {
	// Number of passages reviewed per day
	PassagesPerDay int
	// Listens required before reciting opens
	ListenRepetitions int
	// Recitations required before the self-assessment opens
	ReciteRepetitions int
}

// DefaultConfig returns the default bot configuration. The repetition counts
// mirror the state machine's thresholds so the keyboards always line up with
// what a tap actually does; the batch size can be overridden with
// PASSAGES_PER_DAY.
func DefaultConfig() *BotConfig {
	config := &BotConfig{
		PassagesPerDay:    rotation.DefaultBatchSize,
		ListenRepetitions: review.MaxListens,
		ReciteRepetitions: review.MaxRecites,
	}

	if value := os.Getenv("PASSAGES_PER_DAY"); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			config.PassagesPerDay = n
		}
	}

	return config
}
