package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/example/hifzbot/internal/database"
	"github.com/example/hifzbot/internal/session"
)

// Default window for sending daily review reminders
const (
	DefaultNotificationStartHour = 4
	DefaultNotificationEndHour   = 21
)

// Notifier interface for sending reminders
type Notifier interface {
	SendReviewReminder(learnerID int64) error
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	notifier  Notifier
}

// New creates a new scheduler instance
func New(notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		notifier:  notifier,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() {
	// Check every hour for learners whose reminder hour has come around
	s.scheduler.Every(1).Hour().Do(s.checkAndSendReminders)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndSendReminders pings every learner whose reminder hour is now and
// who has not completed today's session yet
func (s *Scheduler) checkAndSendReminders() {
	currentHour := time.Now().Hour()

	startHour := envHour("NOTIFICATION_START_HOUR", DefaultNotificationStartHour)
	endHour := envHour("NOTIFICATION_END_HOUR", DefaultNotificationEndHour)

	if currentHour < startHour || currentHour > endHour {
		log.Printf("Current hour %d is outside notification hours (%d-%d), skipping reminders",
			currentHour, startHour, endHour)
		return
	}

	learnerRepo := database.NewLearnerRepository()
	today := time.Now().Format(session.DateFormat)

	learners, err := learnerRepo.GetLearnersForReminder(currentHour, today)
	if err != nil {
		log.Printf("Error getting learners for reminder: %v", err)
		return
	}

	for _, learner := range learners {
		if err := s.notifier.SendReviewReminder(learner.ID); err != nil {
			log.Printf("Error sending reminder to learner %d: %v", learner.ID, err)
		}
	}
}

// envHour reads an hour (0-23) from the environment, with a fallback
func envHour(name string, fallback int) int {
	if value := os.Getenv(name); value != "" {
		if h, err := strconv.Atoi(value); err == nil && h >= 0 && h <= 23 {
			return h
		}
	}
	return fallback
}
