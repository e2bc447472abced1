package review

import (
	"testing"

	"github.com/example/hifzbot/pkg/models"
)

func listened(t *testing.T) models.ReviewState {
	t.Helper()
	var s models.ReviewState
	for n := 1; n <= MaxListens; n++ {
		next, ok := ApplyListenTap(s, n)
		if !ok {
			t.Fatalf("listen tap %d rejected", n)
		}
		s = next
	}
	return s
}

func recited(t *testing.T) models.ReviewState {
	t.Helper()
	s := listened(t)
	for n := 1; n <= MaxRecites; n++ {
		next, ok := ApplyReciteTap(s, n)
		if !ok {
			t.Fatalf("recite tap %d rejected", n)
		}
		s = next
	}
	return s
}

func weakAssessed(t *testing.T, areas ...models.PracticeCategory) models.ReviewState {
	t.Helper()
	s, ok := SubmitAssessment(recited(t), models.Assessment{WeakAreas: areas})
	if !ok {
		t.Fatal("weak assessment rejected")
	}
	return s
}

func TestListenTapAdvanceAndUndo(t *testing.T) {
	var s models.ReviewState

	// Advance by one at a time
	s, ok := ApplyListenTap(s, 1)
	if !ok || s.ListenCount != 1 {
		t.Fatalf("after tap 1: count = %d, ok = %v", s.ListenCount, ok)
	}

	// Skipping ahead is rejected
	if _, ok := ApplyListenTap(s, 3); ok {
		t.Error("tap 3 at count 1 should be rejected")
	}

	// Re-tapping the current count undoes it
	s, ok = ApplyListenTap(s, 1)
	if !ok || s.ListenCount != 0 {
		t.Errorf("undo tap: count = %d, ok = %v, want 0, true", s.ListenCount, ok)
	}
}

func TestReciteRequiresThreeListens(t *testing.T) {
	var s models.ReviewState
	s, _ = ApplyListenTap(s, 1)

	if _, ok := ApplyReciteTap(s, 1); ok {
		t.Error("recite tap with listenCount < 3 should be rejected")
	}
}

func TestListenUndoCascades(t *testing.T) {
	s := recited(t)
	s, ok := SubmitAssessment(s, models.Assessment{Smooth: true})
	if !ok {
		t.Fatal("assessment rejected")
	}

	// Undo one listen: recitation and assessment must both fall
	s, ok = ApplyListenTap(s, 3)
	if !ok {
		t.Fatal("listen undo rejected")
	}
	if s.ListenCount != 2 {
		t.Errorf("listenCount = %d, want 2", s.ListenCount)
	}
	if s.ReciteCount != 0 {
		t.Errorf("reciteCount = %d, want 0 after cascade", s.ReciteCount)
	}
	if s.Assessment != nil {
		t.Error("assessment should be cleared by cascade")
	}
	if s.Quality != models.QualityNone {
		t.Errorf("quality = %d, want %d after cascade", s.Quality, models.QualityNone)
	}
}

func TestReciteUndoClearsAssessmentOnly(t *testing.T) {
	s := weakAssessed(t, models.PracticeFluency)

	s, ok := ApplyReciteTap(s, 3)
	if !ok {
		t.Fatal("recite undo rejected")
	}
	if s.ListenCount != MaxListens {
		t.Errorf("listenCount = %d, want %d (listens are upstream, untouched)", s.ListenCount, MaxListens)
	}
	if s.ReciteCount != 2 {
		t.Errorf("reciteCount = %d, want 2", s.ReciteCount)
	}
	if s.Assessment != nil {
		t.Error("assessment should be cleared when recitations drop below 3")
	}
}

// The cascade invariant must hold after every step of any valid tap
// sequence, not just at the end.
func TestCascadeInvariantHoldsThroughout(t *testing.T) {
	var s models.ReviewState
	taps := []struct {
		listen bool
		n      int
	}{
		{true, 1}, {true, 2}, {true, 3},
		{false, 1}, {false, 2},
		{true, 3}, // undo a listen mid-recitation
		{false, 1},
		{true, 3}, {false, 1}, {false, 2}, {false, 3},
	}

	for i, tap := range taps {
		if tap.listen {
			s, _ = ApplyListenTap(s, tap.n)
		} else {
			s, _ = ApplyReciteTap(s, tap.n)
		}
		if s.ReciteCount > 0 && s.ListenCount < MaxListens {
			t.Fatalf("after tap %d: reciteCount %d with listenCount %d", i, s.ReciteCount, s.ListenCount)
		}
	}
}

func TestSubmitAssessment(t *testing.T) {
	// Too early
	if _, ok := SubmitAssessment(listened(t), models.Assessment{Smooth: true}); ok {
		t.Error("assessment before three recitations should be rejected")
	}

	// Smooth -> quality 5
	s, ok := SubmitAssessment(recited(t), models.Assessment{Smooth: true})
	if !ok || s.Quality != models.QualitySmooth {
		t.Errorf("smooth assessment: quality = %d, ok = %v", s.Quality, ok)
	}

	// Re-submission is rejected
	if _, ok := SubmitAssessment(s, models.Assessment{WeakAreas: []models.PracticeCategory{models.PracticeFluency}}); ok {
		t.Error("re-submitting an assessment should be rejected")
	}

	// Weak -> quality 3
	s = weakAssessed(t, models.PracticeMemorisation)
	if s.Quality != models.QualityWeak {
		t.Errorf("weak assessment: quality = %d, want %d", s.Quality, models.QualityWeak)
	}

	// Weak with no areas is malformed
	if _, ok := SubmitAssessment(recited(t), models.Assessment{}); ok {
		t.Error("weak assessment without weak areas should be rejected")
	}
}

func TestMarkPracticeDone(t *testing.T) {
	s := weakAssessed(t, models.PracticeMemorisation, models.PracticeFluency)

	// Category not flagged as weak
	if _, ok := MarkPracticeDone(s, models.PracticeUnderstanding); ok {
		t.Error("practice for a non-weak category should be rejected")
	}

	// First drill lifts quality to 4
	s, ok := MarkPracticeDone(s, models.PracticeFluency)
	if !ok || s.Quality != models.QualityRecovered {
		t.Errorf("after first drill: quality = %d, ok = %v", s.Quality, ok)
	}

	// Repeating the same drill is a no-op
	if _, ok := MarkPracticeDone(s, models.PracticeFluency); ok {
		t.Error("repeating a completed drill should be rejected")
	}

	// Second drill keeps quality at 4
	s, ok = MarkPracticeDone(s, models.PracticeMemorisation)
	if !ok || s.Quality != models.QualityRecovered {
		t.Errorf("after second drill: quality = %d, ok = %v", s.Quality, ok)
	}

	// Practice on a smooth passage is rejected
	smooth, _ := SubmitAssessment(recited(t), models.Assessment{Smooth: true})
	if _, ok := MarkPracticeDone(smooth, models.PracticeFluency); ok {
		t.Error("practice on a smooth passage should be rejected")
	}
}

func TestIsComplete(t *testing.T) {
	if IsComplete(models.ReviewState{}) {
		t.Error("zero state should not be complete")
	}
	if IsComplete(recited(t)) {
		t.Error("unassessed passage should not be complete")
	}

	smooth, _ := SubmitAssessment(recited(t), models.Assessment{Smooth: true})
	if !IsComplete(smooth) {
		t.Error("smooth assessed passage should be complete")
	}

	// Weak passages are complete without any practice drills
	weak := weakAssessed(t, models.PracticeUnderstanding)
	if !IsComplete(weak) {
		t.Error("weak assessed passage should be complete without drills")
	}
}

func TestRejectionLeavesStateUntouched(t *testing.T) {
	before := weakAssessed(t, models.PracticeFluency)

	after, ok := ApplyListenTap(before, 1)
	if ok {
		t.Fatal("tap 1 at listenCount 3 should be rejected")
	}
	if after.ListenCount != before.ListenCount || after.ReciteCount != before.ReciteCount ||
		after.Quality != before.Quality || after.Assessment == nil {
		t.Error("rejected operation must not change state")
	}
}
