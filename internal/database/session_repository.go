package database

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/hifzbot/pkg/models"
)

// SessionRepository handles database operations for daily sessions.
// Implements session.SessionStore. Sessions are written as whole records:
// the passage list travels as one JSON document, never as per-field patches.
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// GetByDate returns the learner's session for a calendar date, or nil if
// none exists.
func (r *SessionRepository) GetByDate(learnerID int64, date string) (*models.DailySession, error) {
	query := `
		SELECT id, learner_id, date, passages, tasks_completed, total_tasks,
		       status, completed_at, created_at, updated_at
		FROM daily_sessions
		WHERE learner_id = $1 AND date = $2
	`

	var sess models.DailySession
	var passagesJSON string
	var completedAt sql.NullTime

	err := DB.QueryRow(query, learnerID, date).Scan(
		&sess.ID, &sess.LearnerID, &sess.Date, &passagesJSON,
		&sess.TasksCompleted, &sess.TotalTasks, &sess.Status,
		&completedAt, &sess.CreatedAt, &sess.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %v", err)
	}

	if err := json.Unmarshal([]byte(passagesJSON), &sess.Passages); err != nil {
		return nil, fmt.Errorf("failed to decode session passages: %v", err)
	}
	if completedAt.Valid {
		sess.CompletedAt = &completedAt.Time
	}
	return &sess, nil
}

// Upsert saves the full session record, creating or replacing the row for
// its (learner, date) pair.
func (r *SessionRepository) Upsert(sess *models.DailySession) error {
	passagesJSON, err := json.Marshal(sess.Passages)
	if err != nil {
		return fmt.Errorf("failed to encode session passages: %v", err)
	}

	var completedAt sql.NullTime
	if sess.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *sess.CompletedAt, Valid: true}
	}

	// Check whether the row exists first; the UNIQUE(learner_id, date)
	// constraint catches the race where two loads insert at once.
	var existingID string
	err = DB.QueryRow(`
		SELECT id FROM daily_sessions
		WHERE learner_id = $1 AND date = $2`, sess.LearnerID, sess.Date).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = DB.Exec(`
			INSERT INTO daily_sessions (
				id, learner_id, date, passages, tasks_completed, total_tasks,
				status, completed_at, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			sess.ID, sess.LearnerID, sess.Date, string(passagesJSON),
			sess.TasksCompleted, sess.TotalTasks, sess.Status,
			completedAt, sess.CreatedAt, sess.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create session: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check session: %v", err)
	}

	_, err = DB.Exec(`
		UPDATE daily_sessions SET
			passages = $1,
			tasks_completed = $2,
			total_tasks = $3,
			status = $4,
			completed_at = $5,
			updated_at = $6
		WHERE id = $7`,
		string(passagesJSON), sess.TasksCompleted, sess.TotalTasks,
		sess.Status, completedAt, sess.UpdatedAt, existingID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %v", err)
	}
	return nil
}
