package models

// MemorizedSurah is one entry of a learner's memorized list. Position gives
// the order the surahs were memorized in, which is also the order the
// segmenter walks them in.
type MemorizedSurah struct {
	LearnerID   int64  `json:"learner_id" db:"learner_id"`
	SurahNumber int    `json:"surah_number" db:"surah_number"`
	Position    int    `json:"position" db:"position"`
	CreatedAt   string `json:"created_at" db:"created_at"`
}
