package database

import (
	"testing"

	"github.com/example/hifzbot/pkg/models"
)

func TestLearnerNotificationSettings(t *testing.T) {
	setupTestDB(t)
	createTestLearner(t, 7)
	repo := NewLearnerRepository()

	learner, err := repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !learner.NotificationEnabled || learner.NotificationHour != 9 {
		t.Fatalf("fresh learner reminders = %v at %d, want enabled at 9",
			learner.NotificationEnabled, learner.NotificationHour)
	}

	if err := repo.SetNotificationHour(7, 20); err != nil {
		t.Fatalf("SetNotificationHour: %v", err)
	}
	if err := repo.SetNotificationEnabled(7, false); err != nil {
		t.Fatalf("SetNotificationEnabled: %v", err)
	}

	learner, err = repo.GetByID(7)
	if err != nil {
		t.Fatalf("GetByID after update: %v", err)
	}
	if learner.NotificationEnabled {
		t.Error("reminders still enabled after SetNotificationEnabled(false)")
	}
	if learner.NotificationHour != 20 {
		t.Errorf("NotificationHour = %d, want 20", learner.NotificationHour)
	}
}

func TestGetLearnersForReminderHonorsSettings(t *testing.T) {
	setupTestDB(t)
	createTestLearner(t, 1)
	createTestLearner(t, 2)
	createTestLearner(t, 3)
	repo := NewLearnerRepository()

	if err := repo.SetNotificationHour(1, 20); err != nil {
		t.Fatalf("SetNotificationHour: %v", err)
	}
	if err := repo.SetNotificationHour(2, 20); err != nil {
		t.Fatalf("SetNotificationHour: %v", err)
	}
	if err := repo.SetNotificationEnabled(2, false); err != nil {
		t.Fatalf("SetNotificationEnabled: %v", err)
	}
	// Learner 3 keeps the default hour 9

	got, err := repo.GetLearnersForReminder(20, "2024-03-15")
	if err != nil {
		t.Fatalf("GetLearnersForReminder: %v", err)
	}
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("reminder list at hour 20 = %+v, want just learner 1", got)
	}

	// A completed session for the day removes the learner from the list
	sess := testSession(1, "2024-03-15")
	sess.Status = models.SessionCompleted
	if err := NewSessionRepository().Upsert(sess); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	got, err = repo.GetLearnersForReminder(20, "2024-03-15")
	if err != nil {
		t.Fatalf("GetLearnersForReminder: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("reminder list after completion = %+v, want empty", got)
	}
}
