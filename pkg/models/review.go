package models

// PracticeCategory is a weak area the learner can drill after a shaky recitation.
type PracticeCategory string

const (
	PracticeMemorisation  PracticeCategory = "memorisation"
	PracticeFluency       PracticeCategory = "fluency"
	PracticeUnderstanding PracticeCategory = "understanding"
)

// Quality score values for a reviewed passage
const (
	// QualityNone means the passage has not been assessed yet
	QualityNone = 0
	// QualityWeak means the learner self-assessed the recitation as weak
	QualityWeak = 3
	// QualityRecovered means a weak passage with at least one practice drill done
	QualityRecovered = 4
	// QualitySmooth means the learner recited smoothly from memory
	QualitySmooth = 5
)

// Assessment is the learner's self-assessment after reciting a passage three times.
// Smooth and WeakAreas are mutually exclusive: a smooth recitation carries no
// weak areas, a weak one names at least one.
type Assessment struct {
	Smooth    bool               `json:"smooth"`
	WeakAreas []PracticeCategory `json:"weak_areas,omitempty"`
}

// ReviewState tracks one passage's progress through the daily review steps:
// listen to the recording three times, recite three times, self-assess, and
// optionally drill the weak areas.
type ReviewState struct {
	ListenCount  int                `json:"listen_count"`
	ReciteCount  int                `json:"recite_count"`
	Assessment   *Assessment        `json:"assessment,omitempty"`
	Quality      int                `json:"quality"`
	PracticeDone []PracticeCategory `json:"practice_done,omitempty"`
}

// HasPracticed reports whether the given category has already been drilled.
func (s ReviewState) HasPracticed(category PracticeCategory) bool {
	for _, c := range s.PracticeDone {
		if c == category {
			return true
		}
	}
	return false
}

// IsWeakArea reports whether the assessment marked the category as weak.
func (s ReviewState) IsWeakArea(category PracticeCategory) bool {
	if s.Assessment == nil {
		return false
	}
	for _, c := range s.Assessment.WeakAreas {
		if c == category {
			return true
		}
	}
	return false
}
