package session

import (
	"github.com/example/hifzbot/internal/review"
	"github.com/example/hifzbot/pkg/models"
)

// Recount recomputes the session's task counters from its passage states.
// TasksCompleted is never mutated anywhere else; every mutation path calls
// Recount so the counters can not go stale.
func Recount(s *models.DailySession) {
	completed := 0
	for _, p := range s.Passages {
		if review.IsComplete(p.ReviewState) {
			completed++
		}
	}
	s.TasksCompleted = completed
	s.TotalTasks = len(s.Passages)
}

// AllTasksDone reports whether every passage in the session has finished its
// review. An empty session is never done.
func AllTasksDone(s *models.DailySession) bool {
	return s.TotalTasks > 0 && s.TasksCompleted == s.TotalTasks
}
