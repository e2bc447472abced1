package database

import (
	"fmt"

	"github.com/example/hifzbot/pkg/models"
)

// MemorizationRepository handles database operations for learners' memorized lists
type MemorizationRepository struct{}

// NewMemorizationRepository creates a new repository instance
func NewMemorizationRepository() *MemorizationRepository {
	return &MemorizationRepository{}
}

// GetMemorizedSurahs returns the learner's memorized surah numbers in
// memorization order. Implements session.LearnerStore.
func (r *MemorizationRepository) GetMemorizedSurahs(learnerID int64) ([]int, error) {
	var surahs []int
	err := DB.Select(&surahs, `
		SELECT surah_number FROM memorized_surahs
		WHERE learner_id = $1
		ORDER BY position ASC`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memorized surahs: %v", err)
	}
	return surahs, nil
}

// GetAll returns the learner's full memorized list entries
func (r *MemorizationRepository) GetAll(learnerID int64) ([]models.MemorizedSurah, error) {
	var entries []models.MemorizedSurah
	err := DB.Select(&entries, `
		SELECT * FROM memorized_surahs
		WHERE learner_id = $1
		ORDER BY position ASC`, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memorized list: %v", err)
	}
	return entries, nil
}

// Add appends a surah to the end of the learner's memorized list. Adding a
// surah that is already on the list is a no-op.
func (r *MemorizationRepository) Add(learnerID int64, surahNumber int) error {
	var count int
	err := DB.Get(&count, `
		SELECT COUNT(*) FROM memorized_surahs
		WHERE learner_id = $1 AND surah_number = $2`, learnerID, surahNumber)
	if err != nil {
		return fmt.Errorf("failed to check memorized surah: %v", err)
	}
	if count > 0 {
		return nil
	}

	var maxPosition int
	err = DB.Get(&maxPosition, `
		SELECT COALESCE(MAX(position), 0) FROM memorized_surahs
		WHERE learner_id = $1`, learnerID)
	if err != nil {
		return fmt.Errorf("failed to get list position: %v", err)
	}

	_, err = DB.Exec(`
		INSERT INTO memorized_surahs (learner_id, surah_number, position)
		VALUES ($1, $2, $3)`, learnerID, surahNumber, maxPosition+1)
	if err != nil {
		return fmt.Errorf("failed to add memorized surah: %v", err)
	}
	return nil
}

// Remove deletes a surah from the learner's memorized list
func (r *MemorizationRepository) Remove(learnerID int64, surahNumber int) error {
	_, err := DB.Exec(`
		DELETE FROM memorized_surahs
		WHERE learner_id = $1 AND surah_number = $2`, learnerID, surahNumber)
	if err != nil {
		return fmt.Errorf("failed to remove memorized surah: %v", err)
	}
	return nil
}

// Replace overwrites the learner's whole memorized list with the given
// surah numbers, in the given order. Used by the bulk importer.
func (r *MemorizationRepository) Replace(learnerID int64, surahNumbers []int) error {
	tx, err := DB.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM memorized_surahs WHERE learner_id = $1", learnerID); err != nil {
		return fmt.Errorf("failed to clear memorized list: %v", err)
	}

	for i, number := range surahNumbers {
		_, err := tx.Exec(`
			INSERT INTO memorized_surahs (learner_id, surah_number, position)
			VALUES ($1, $2, $3)`, learnerID, number, i+1)
		if err != nil {
			return fmt.Errorf("failed to insert memorized surah %d: %v", number, err)
		}
	}

	return tx.Commit()
}
