package session

import (
	"testing"

	"github.com/example/hifzbot/pkg/models"
)

func passage(listen, recite int, assessed bool) models.SessionPassage {
	p := models.SessionPassage{
		PassageUnit: models.PassageUnit{SurahNumber: 1, FromAyah: 1, ToAyah: 7},
		ReviewState: models.ReviewState{ListenCount: listen, ReciteCount: recite},
	}
	if assessed {
		p.Assessment = &models.Assessment{Smooth: true}
		p.Quality = models.QualitySmooth
	}
	return p
}

func TestRecount(t *testing.T) {
	tests := []struct {
		name          string
		passages      []models.SessionPassage
		wantCompleted int
		wantDone      bool
	}{
		{"empty session", nil, 0, false},
		{"nothing done", []models.SessionPassage{passage(0, 0, false)}, 0, false},
		{"partially through", []models.SessionPassage{passage(3, 3, true), passage(3, 1, false)}, 1, false},
		{"recited but unassessed", []models.SessionPassage{passage(3, 3, false)}, 0, false},
		{"all done", []models.SessionPassage{passage(3, 3, true), passage(3, 3, true)}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &models.DailySession{Passages: tt.passages}
			Recount(s)

			if s.TasksCompleted != tt.wantCompleted {
				t.Errorf("TasksCompleted = %d, want %d", s.TasksCompleted, tt.wantCompleted)
			}
			if s.TotalTasks != len(tt.passages) {
				t.Errorf("TotalTasks = %d, want %d", s.TotalTasks, len(tt.passages))
			}
			if got := AllTasksDone(s); got != tt.wantDone {
				t.Errorf("AllTasksDone = %v, want %v", got, tt.wantDone)
			}
		})
	}
}
