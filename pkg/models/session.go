package models

import "time"

// Session status values
const (
	SessionInProgress = "in_progress"
	SessionCompleted  = "completed"
)

// SessionPassage is one passage inside a daily session together with its
// review progress. This is the shape persisted in the session record.
type SessionPassage struct {
	PassageUnit
	ReviewState
}

// DailySession is one learner's review session for one calendar date.
// There is exactly one session per (learner, date); the passage list is
// fixed at creation time and only the review states mutate afterwards.
type DailySession struct {
	ID             string           `json:"id" db:"id"`
	LearnerID      int64            `json:"learner_id" db:"learner_id"`
	Date           string           `json:"date" db:"date"` // YYYY-MM-DD
	Passages       []SessionPassage `json:"passages"`
	TasksCompleted int              `json:"tasks_completed" db:"tasks_completed"`
	TotalTasks     int              `json:"total_tasks" db:"total_tasks"`
	Status         string           `json:"status" db:"status"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

// IsCompleted reports whether the session has reached its terminal status.
func (s *DailySession) IsCompleted() bool {
	return s.Status == SessionCompleted
}
