package database

import (
	"database/sql"
	"fmt"

	"github.com/example/hifzbot/pkg/models"
)

// StreakRepository handles database operations for streak states.
// Implements session.StreakStore.
type StreakRepository struct{}

// NewStreakRepository creates a new repository instance
func NewStreakRepository() *StreakRepository {
	return &StreakRepository{}
}

// GetOrCreate returns the learner's streak state, creating a zeroed record
// on first access.
func (r *StreakRepository) GetOrCreate(learnerID int64) (*models.StreakState, error) {
	var state models.StreakState
	err := DB.Get(&state, "SELECT * FROM streak_states WHERE learner_id = $1", learnerID)
	if err == sql.ErrNoRows {
		state = models.StreakState{LearnerID: learnerID}
		_, err = DB.Exec("INSERT INTO streak_states (learner_id) VALUES ($1)", learnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to create streak state: %v", err)
		}
		return &state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get streak state: %v", err)
	}
	return &state, nil
}

// Update persists the learner's streak state
func (r *StreakRepository) Update(state *models.StreakState) error {
	_, err := DB.Exec(`
		UPDATE streak_states SET
			current_streak = $1,
			longest_streak = $2,
			total_sessions_completed = $3,
			last_completion_date = $4,
			rotation_cursor = $5,
			updated_at = CURRENT_TIMESTAMP
		WHERE learner_id = $6`,
		state.CurrentStreak, state.LongestStreak, state.TotalSessionsCompleted,
		state.LastCompletionDate, state.RotationCursor, state.LearnerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update streak state: %v", err)
	}
	return nil
}
