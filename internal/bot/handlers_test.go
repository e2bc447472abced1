package bot

import (
	"os"
	"testing"

	"github.com/example/hifzbot/internal/rotation"
	"github.com/example/hifzbot/pkg/models"
)

func TestPassageKeyboardFollowsConfiguredRepetitions(t *testing.T) {
	b := &Bot{config: &BotConfig{PassagesPerDay: 3, ListenRepetitions: 2, ReciteRepetitions: 2}}

	// Fresh passage: one listen row plus the back row
	kb := b.passageKeyboard(7, 0, models.ReviewState{})
	if len(kb.InlineKeyboard) != 2 {
		t.Fatalf("keyboard rows = %d, want listen row and back row", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[0]) != 2 {
		t.Errorf("listen row has %d buttons, want 2", len(kb.InlineKeyboard[0]))
	}

	// Reciting opens after the configured number of listens, not a fixed one
	kb = b.passageKeyboard(7, 0, models.ReviewState{ListenCount: 2})
	if len(kb.InlineKeyboard) != 3 {
		t.Fatalf("keyboard rows = %d, want listen, recite and back rows", len(kb.InlineKeyboard))
	}
	if len(kb.InlineKeyboard[1]) != 2 {
		t.Errorf("recite row has %d buttons, want 2", len(kb.InlineKeyboard[1]))
	}

	// Assessment buttons appear after the configured number of recitations
	kb = b.passageKeyboard(7, 0, models.ReviewState{ListenCount: 2, ReciteCount: 2})
	found := false
	for _, row := range kb.InlineKeyboard {
		for _, button := range row {
			if button.CallbackData != nil && *button.CallbackData == "assess:0:smooth" {
				found = true
			}
		}
	}
	if !found {
		t.Error("assessment buttons missing after configured recitations are done")
	}
}

func TestPassageStatusIconUsesConfiguredTotals(t *testing.T) {
	b := &Bot{config: &BotConfig{PassagesPerDay: 3, ListenRepetitions: 5, ReciteRepetitions: 2}}

	got := b.passageStatusIcon(models.ReviewState{ListenCount: 3, ReciteCount: 1})
	want := "🎧3/5 🗣1/2"
	if got != want {
		t.Errorf("passageStatusIcon = %q, want %q", got, want)
	}
}

func TestDefaultConfigReadsPassagesPerDay(t *testing.T) {
	os.Setenv("PASSAGES_PER_DAY", "5")
	defer os.Unsetenv("PASSAGES_PER_DAY")

	if got := DefaultConfig().PassagesPerDay; got != 5 {
		t.Errorf("PassagesPerDay = %d, want 5", got)
	}

	// Garbage falls back to the rotation default
	os.Setenv("PASSAGES_PER_DAY", "many")
	if got := DefaultConfig().PassagesPerDay; got != rotation.DefaultBatchSize {
		t.Errorf("PassagesPerDay = %d, want %d", got, rotation.DefaultBatchSize)
	}
}
