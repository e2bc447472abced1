package session

import "github.com/example/hifzbot/pkg/models"

// LearnerStore provides the learner's memorized list, in memorization order.
type LearnerStore interface {
	GetMemorizedSurahs(learnerID int64) ([]int, error)
}

// SessionStore persists daily sessions. Sessions are written as whole
// records: the tap reducers need the full pre-mutation state, so field-level
// patches are never used.
type SessionStore interface {
	// GetByDate returns the learner's session for a date, or nil if none exists
	GetByDate(learnerID int64, date string) (*models.DailySession, error)
	Upsert(session *models.DailySession) error
}

// StreakStore persists the learner's long-term streak and rotation state.
type StreakStore interface {
	GetOrCreate(learnerID int64) (*models.StreakState, error)
	Update(state *models.StreakState) error
}
