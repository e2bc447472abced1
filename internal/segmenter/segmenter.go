package segmenter

import (
	"fmt"

	"github.com/example/hifzbot/internal/quran"
	"github.com/example/hifzbot/pkg/models"
)

// FallbackAyahCount is assumed for units the ayah table does not know
const FallbackAyahCount = 7

// Segment turns an ordered list of memorized surah numbers into the flat
// ordered passage list the rotation runs over. Surahs that a juz boundary
// cuts through become one passage per juz segment; every other surah becomes
// a single whole-surah passage. An empty memorized list falls back to the
// fixed default set so a new learner still gets a session.
func Segment(surahNumbers []int) []models.PassageUnit {
	if len(surahNumbers) == 0 {
		surahNumbers = quran.DefaultPassageSurahs()
	}

	var passages []models.PassageUnit
	for _, number := range surahNumbers {
		passages = append(passages, segmentSurah(number)...)
	}
	return passages
}

// segmentSurah produces the passages for one surah in ascending ayah order.
func segmentSurah(number int) []models.PassageUnit {
	segments := quran.BoundarySegments(number)
	if len(segments) <= 1 {
		// Whole surah as a single passage
		length, ok := quran.AyahCount(number)
		if !ok {
			length = FallbackAyahCount
		}
		return []models.PassageUnit{{
			SurahNumber: number,
			FromAyah:    1,
			ToAyah:      length,
			Label:       quran.SurahName(number),
		}}
	}

	passages := make([]models.PassageUnit, 0, len(segments))
	for _, seg := range segments {
		passages = append(passages, models.PassageUnit{
			SurahNumber: number,
			FromAyah:    seg[0],
			ToAyah:      seg[1],
			Label:       fmt.Sprintf("%s (%d-%d)", quran.SurahName(number), seg[0], seg[1]),
		})
	}
	return passages
}
