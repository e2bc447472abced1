package models

import "fmt"

// PassageUnit identifies one reviewable chunk of memorized text: either a
// whole surah or one juz-bounded segment of it. Passage units are derived
// from the learner's memorized list on demand and are never stored on their own.
type PassageUnit struct {
	SurahNumber int    `json:"surah_number" db:"surah_number"`
	FromAyah    int    `json:"from_ayah" db:"from_ayah"` // inclusive
	ToAyah      int    `json:"to_ayah" db:"to_ayah"`     // inclusive
	Label       string `json:"label" db:"label"`
}

// Key returns a stable identity string for the passage, used to match
// passages between a stored session and a freshly segmented master list.
func (p PassageUnit) Key() string {
	return fmt.Sprintf("%d:%d-%d", p.SurahNumber, p.FromAyah, p.ToAyah)
}
