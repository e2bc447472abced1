package models

// StreakState holds a learner's long-term review record: how many days in a
// row they have completed a session, and where in the passage rotation the
// next day's batch starts. Mutated only when a session completes.
type StreakState struct {
	LearnerID              int64  `json:"learner_id" db:"learner_id"`
	CurrentStreak          int    `json:"current_streak" db:"current_streak"`
	LongestStreak          int    `json:"longest_streak" db:"longest_streak"`
	TotalSessionsCompleted int    `json:"total_sessions_completed" db:"total_sessions_completed"`
	LastCompletionDate     string `json:"last_completion_date" db:"last_completion_date"` // YYYY-MM-DD, empty if never
	RotationCursor         int    `json:"rotation_cursor" db:"rotation_cursor"`
	CreatedAt              string `json:"created_at" db:"created_at"`
	UpdatedAt              string `json:"updated_at" db:"updated_at"`
}
