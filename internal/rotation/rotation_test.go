package rotation

import (
	"fmt"
	"testing"

	"github.com/example/hifzbot/pkg/models"
)

func makePassages(n int) []models.PassageUnit {
	passages := make([]models.PassageUnit, n)
	for i := range passages {
		passages[i] = models.PassageUnit{
			SurahNumber: i + 1,
			FromAyah:    1,
			ToAyah:      7,
			Label:       fmt.Sprintf("Surah %d", i+1),
		}
	}
	return passages
}

func surahsOf(batch []models.PassageUnit) []int {
	out := make([]int, len(batch))
	for i, p := range batch {
		out[i] = p.SurahNumber
	}
	return out
}

func TestSelectBatch(t *testing.T) {
	tests := []struct {
		name   string
		length int
		cursor int
		k      int
		want   []int
	}{
		{"start of list", 7, 0, 3, []int{1, 2, 3}},
		{"middle of list", 7, 2, 3, []int{3, 4, 5}},
		{"wraparound", 7, 5, 3, []int{6, 7, 1}},
		{"k equals length", 3, 1, 3, []int{2, 3, 1}},
		{"k exceeds length", 2, 0, 3, []int{1, 2}},
		{"stale cursor past end", 4, 9, 3, []int{2, 3, 4}},
		{"negative cursor", 4, -1, 2, []int{4, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := surahsOf(SelectBatch(makePassages(tt.length), tt.cursor, tt.k))
			if len(got) != len(tt.want) {
				t.Fatalf("SelectBatch returned %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SelectBatch returned %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestSelectBatchEmptyList(t *testing.T) {
	if got := SelectBatch(nil, 0, 3); got != nil {
		t.Errorf("SelectBatch(nil) = %v, want nil", got)
	}
}

// Advancing the cursor by k each call must cover the whole list exactly once
// per lap, wraparound included.
func TestSelectBatchCoversListOncePerLap(t *testing.T) {
	const length, k = 7, 3
	passages := makePassages(length)

	seen := make(map[int]int)
	cursor := 5
	calls := (length + k - 1) / k // ceil(len/k)
	total := 0
	for i := 0; i < calls; i++ {
		batch := SelectBatch(passages, cursor, k)
		for _, p := range batch {
			if total < length {
				seen[p.SurahNumber]++
			}
			total++
		}
		cursor = (cursor + k) % length
	}

	for n := 1; n <= length; n++ {
		if seen[n] != 1 {
			t.Errorf("surah %d selected %d times in one lap, want 1", n, seen[n])
		}
	}
}

func TestNextCursor(t *testing.T) {
	master := makePassages(8)

	tests := []struct {
		name string
		last models.PassageUnit
		want int
	}{
		{"after first", master[0], 1},
		{"after middle", master[4], 5},
		{"after last wraps to zero", master[7], 0},
		{"passage no longer in list", models.PassageUnit{SurahNumber: 99, FromAyah: 1, ToAyah: 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextCursor(master, tt.last); got != tt.want {
				t.Errorf("NextCursor = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextCursorEmptyMaster(t *testing.T) {
	if got := NextCursor(nil, models.PassageUnit{SurahNumber: 1}); got != 0 {
		t.Errorf("NextCursor(nil, ...) = %d, want 0", got)
	}
}
