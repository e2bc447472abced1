package rotation

import "github.com/example/hifzbot/pkg/models"

// DefaultBatchSize is the number of passages reviewed per day
const DefaultBatchSize = 3

// SelectBatch returns the k passages starting at the cursor, wrapping around
// the end of the list. The cursor is clamped by modulo so a stale value from
// before the master list shrank still lands on a valid index. Returns nil
// for an empty list; k is capped to the list length.
func SelectBatch(passages []models.PassageUnit, cursor, k int) []models.PassageUnit {
	if len(passages) == 0 {
		return nil
	}
	if k > len(passages) {
		k = len(passages)
	}
	if k <= 0 {
		return nil
	}

	cursor = normalize(cursor, len(passages))

	batch := make([]models.PassageUnit, 0, k)
	for i := 0; i < k; i++ {
		batch = append(batch, passages[(cursor+i)%len(passages)])
	}
	return batch
}

// NextCursor computes where tomorrow's batch starts: directly after the last
// passage reviewed today, located in the current master list. The master
// list may have grown or shrunk since the session was created, so the
// position is looked up by passage identity rather than derived from the old
// cursor. A passage that is no longer in the list restarts the rotation at 0.
func NextCursor(master []models.PassageUnit, last models.PassageUnit) int {
	if len(master) == 0 {
		return 0
	}

	idx := -1
	for i, p := range master {
		if p.Key() == last.Key() {
			idx = i
			break
		}
	}
	return (idx + 1) % len(master)
}

// normalize maps any integer cursor onto a valid index
func normalize(cursor, length int) int {
	cursor %= length
	if cursor < 0 {
		cursor += length
	}
	return cursor
}
