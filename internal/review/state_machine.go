package review

import "github.com/example/hifzbot/pkg/models"

// MaxListens and MaxRecites are the repetitions required per step
const (
	MaxListens = 3
	MaxRecites = 3
)

// The review steps for one passage run in a fixed order: listen to the
// recording three times, recite three times, self-assess, then optionally
// drill the weak areas. Each operation below is a pure function from the
// current state to the next one; the bool result is false when the tap is
// rejected as out of order, in which case the returned state is unchanged.
//
// Taps are idempotent-undo: tapping the count you are already at toggles it
// back down by one, tapping the next count advances by exactly one, anything
// else is rejected. Whenever a tap drops a count below three, every later
// step loses its footing and is reset along with it.

// ApplyListenTap applies a tap on listen button n (1..3).
func ApplyListenTap(s models.ReviewState, n int) (models.ReviewState, bool) {
	if n < 1 || n > MaxListens {
		return s, false
	}

	switch n {
	case s.ListenCount:
		s.ListenCount = n - 1 // undo
	case s.ListenCount + 1:
		s.ListenCount = n
	default:
		return s, false
	}

	if s.ListenCount < MaxListens {
		// Recitation and assessment depended on three listens
		s.ReciteCount = 0
		s = clearAssessment(s)
	}
	return s, true
}

// ApplyReciteTap applies a tap on recite button n (1..3). Reciting is only
// open once all three listens are done.
func ApplyReciteTap(s models.ReviewState, n int) (models.ReviewState, bool) {
	if s.ListenCount < MaxListens {
		return s, false
	}
	if n < 1 || n > MaxRecites {
		return s, false
	}

	switch n {
	case s.ReciteCount:
		s.ReciteCount = n - 1 // undo
	case s.ReciteCount + 1:
		s.ReciteCount = n
	default:
		return s, false
	}

	if s.ReciteCount < MaxRecites {
		s = clearAssessment(s)
	}
	return s, true
}

// SubmitAssessment records the learner's self-assessment. Only one
// assessment is accepted per pass; changing it requires tapping a count
// back down first, which clears the old assessment.
func SubmitAssessment(s models.ReviewState, a models.Assessment) (models.ReviewState, bool) {
	if s.ReciteCount < MaxRecites || s.Assessment != nil {
		return s, false
	}
	if !a.Smooth && len(a.WeakAreas) == 0 {
		return s, false
	}

	assessment := a
	s.Assessment = &assessment
	if a.Smooth {
		s.Assessment.WeakAreas = nil
		s.Quality = models.QualitySmooth
	} else {
		s.Quality = models.QualityWeak
	}
	return s, true
}

// MarkPracticeDone records one completed practice drill. Only categories the
// assessment flagged as weak are accepted. The first completed drill lifts
// the quality from weak to recovered; it never drops back.
func MarkPracticeDone(s models.ReviewState, category models.PracticeCategory) (models.ReviewState, bool) {
	if !s.IsWeakArea(category) {
		return s, false
	}
	if s.HasPracticed(category) {
		return s, false
	}

	done := make([]models.PracticeCategory, len(s.PracticeDone), len(s.PracticeDone)+1)
	copy(done, s.PracticeDone)
	s.PracticeDone = append(done, category)

	if s.Quality == models.QualityWeak {
		s.Quality = models.QualityRecovered
	}
	return s, true
}

// IsComplete reports whether the passage has finished its review: three
// listens, three recitations and an assessment. Practice drills are optional
// and never block completion.
func IsComplete(s models.ReviewState) bool {
	return s.ListenCount == MaxListens && s.ReciteCount == MaxRecites && s.Assessment != nil
}

// clearAssessment wipes the assessment and everything derived from it
func clearAssessment(s models.ReviewState) models.ReviewState {
	s.Assessment = nil
	s.Quality = models.QualityNone
	s.PracticeDone = nil
	return s
}
