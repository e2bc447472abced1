package database

import (
	"database/sql"
	"fmt"

	"github.com/example/hifzbot/pkg/models"
)

// LearnerRepository handles database operations for learners
type LearnerRepository struct{}

// NewLearnerRepository creates a new repository instance
func NewLearnerRepository() *LearnerRepository {
	return &LearnerRepository{}
}

// GetByID returns a learner by telegram ID
func (r *LearnerRepository) GetByID(id int64) (*models.Learner, error) {
	var learner models.Learner
	err := DB.Get(&learner, "SELECT * FROM learners WHERE telegram_id = $1", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get learner: %v", err)
	}
	return &learner, nil
}

// CreateOrUpdate registers a learner on first contact and refreshes their
// telegram profile fields on every later one.
func (r *LearnerRepository) CreateOrUpdate(learner *models.Learner) error {
	var existingID int64
	err := DB.QueryRow("SELECT telegram_id FROM learners WHERE telegram_id = $1", learner.ID).Scan(&existingID)

	if err == sql.ErrNoRows {
		_, err = DB.Exec(`
			INSERT INTO learners (telegram_id, username, first_name, last_name, is_admin)
			VALUES ($1, $2, $3, $4, $5)`,
			learner.ID, learner.Username, learner.FirstName, learner.LastName, learner.IsAdmin,
		)
		if err != nil {
			return fmt.Errorf("failed to create learner: %v", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to check learner: %v", err)
	}

	_, err = DB.Exec(`
		UPDATE learners SET username = $1, first_name = $2, last_name = $3, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = $4`,
		learner.Username, learner.FirstName, learner.LastName, learner.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update learner: %v", err)
	}
	return nil
}

// SetNotificationHour updates when the learner wants their daily reminder
func (r *LearnerRepository) SetNotificationHour(id int64, hour int) error {
	_, err := DB.Exec(`
		UPDATE learners SET notification_hour = $1, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = $2`, hour, id)
	if err != nil {
		return fmt.Errorf("failed to update notification hour: %v", err)
	}
	return nil
}

// SetNotificationEnabled toggles daily reminders for the learner
func (r *LearnerRepository) SetNotificationEnabled(id int64, enabled bool) error {
	_, err := DB.Exec(`
		UPDATE learners SET notification_enabled = $1, updated_at = CURRENT_TIMESTAMP
		WHERE telegram_id = $2`, enabled, id)
	if err != nil {
		return fmt.Errorf("failed to update notification setting: %v", err)
	}
	return nil
}

// GetLearnersForReminder returns learners who want a reminder at the given
// hour and have not completed a session for the given date yet.
func (r *LearnerRepository) GetLearnersForReminder(hour int, date string) ([]models.Learner, error) {
	var learners []models.Learner
	query := `
		SELECT l.* FROM learners l
		LEFT JOIN daily_sessions s
			ON s.learner_id = l.telegram_id AND s.date = $1 AND s.status = 'completed'
		WHERE l.notification_enabled = true
			AND l.notification_hour = $2
			AND s.id IS NULL
	`
	err := DB.Select(&learners, query, date, hour)
	if err != nil {
		return nil, fmt.Errorf("failed to get learners for reminder: %v", err)
	}
	return learners, nil
}
