package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/example/hifzbot/internal/review"
	"github.com/example/hifzbot/internal/rotation"
	"github.com/example/hifzbot/internal/segmenter"
	"github.com/example/hifzbot/pkg/models"
)

// ErrNoSession is returned when a mutation targets a day with no session yet
var ErrNoSession = errors.New("no session for today")

// DateFormat is the calendar-date key format for sessions
const DateFormat = "2006-01-02"

// Orchestrator drives a learner's daily review: it resolves or creates
// today's session, routes taps to the right passage's state machine, keeps
// the task counters current and commits the streak update exactly once when
// the session completes.
type Orchestrator struct {
	learners LearnerStore
	sessions SessionStore
	streaks  StreakStore

	// BatchSize is how many passages go into a new day's session
	BatchSize int
	// Now is the clock used for dates and timestamps; replaced in tests
	Now func() time.Time
}

// New creates an orchestrator over the given stores.
func New(learners LearnerStore, sessions SessionStore, streaks StreakStore) *Orchestrator {
	return &Orchestrator{
		learners:  learners,
		sessions:  sessions,
		streaks:   streaks,
		BatchSize: rotation.DefaultBatchSize,
		Now:       time.Now,
	}
}

// today returns the current calendar date key
func (o *Orchestrator) today() string {
	return o.Now().Format(DateFormat)
}

// LoadToday resolves the learner's session for today, creating it if it does
// not exist yet. Creation checks for an existing session first, so calling
// this twice (or from two chats at once) never produces a second session for
// the same day; the database's (learner, date) uniqueness backs this up.
func (o *Orchestrator) LoadToday(learnerID int64) (*models.DailySession, error) {
	date := o.today()

	existing, err := o.sessions.GetByDate(learnerID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %v", err)
	}
	if existing != nil {
		return existing, nil
	}

	surahs, err := o.learners.GetMemorizedSurahs(learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load memorized list: %v", err)
	}
	master := segmenter.Segment(surahs)

	streak, err := o.streaks.GetOrCreate(learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak state: %v", err)
	}

	batch := rotation.SelectBatch(master, streak.RotationCursor, o.BatchSize)

	now := o.Now()
	sess := &models.DailySession{
		ID:        uuid.NewString(),
		LearnerID: learnerID,
		Date:      date,
		Status:    models.SessionInProgress,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, p := range batch {
		sess.Passages = append(sess.Passages, models.SessionPassage{PassageUnit: p})
	}
	Recount(sess)

	if err := o.sessions.Upsert(sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %v", err)
	}
	return sess, nil
}

// ApplyListenTap applies a listen tap to one passage and saves the session.
// The bool result is false when the state machine rejected the tap.
func (o *Orchestrator) ApplyListenTap(learnerID int64, passageIndex, n int) (*models.DailySession, bool, error) {
	return o.apply(learnerID, passageIndex, func(s models.ReviewState) (models.ReviewState, bool) {
		return review.ApplyListenTap(s, n)
	})
}

// ApplyReciteTap applies a recite tap to one passage and saves the session.
func (o *Orchestrator) ApplyReciteTap(learnerID int64, passageIndex, n int) (*models.DailySession, bool, error) {
	return o.apply(learnerID, passageIndex, func(s models.ReviewState) (models.ReviewState, bool) {
		return review.ApplyReciteTap(s, n)
	})
}

// SubmitAssessment records a passage's self-assessment and saves the session.
func (o *Orchestrator) SubmitAssessment(learnerID int64, passageIndex int, a models.Assessment) (*models.DailySession, bool, error) {
	return o.apply(learnerID, passageIndex, func(s models.ReviewState) (models.ReviewState, bool) {
		return review.SubmitAssessment(s, a)
	})
}

// MarkPracticeDone records one completed practice drill and saves the session.
func (o *Orchestrator) MarkPracticeDone(learnerID int64, passageIndex int, category models.PracticeCategory) (*models.DailySession, bool, error) {
	return o.apply(learnerID, passageIndex, func(s models.ReviewState) (models.ReviewState, bool) {
		return review.MarkPracticeDone(s, category)
	})
}

// StreakState returns the learner's current streak and rotation state.
func (o *Orchestrator) StreakState(learnerID int64) (*models.StreakState, error) {
	return o.streaks.GetOrCreate(learnerID)
}

// FinishSession closes the session once every task is done. It is a no-op on
// an already-completed session, and rejects sessions with work remaining.
func (o *Orchestrator) FinishSession(learnerID int64) (*models.DailySession, bool, error) {
	sess, err := o.loadExisting(learnerID)
	if err != nil {
		return nil, false, err
	}
	if sess.IsCompleted() {
		return sess, false, nil
	}

	Recount(sess)
	if !AllTasksDone(sess) {
		return sess, false, nil
	}

	if err := o.commitCompletion(sess); err != nil {
		return nil, false, err
	}
	if err := o.sessions.Upsert(sess); err != nil {
		return nil, false, fmt.Errorf("failed to save session: %v", err)
	}
	return sess, true, nil
}

// apply is the single read-modify-write path for all passage mutations: load
// the whole session, run one reducer, recount, commit completion if this
// mutation finished the last task, and save the whole record back.
func (o *Orchestrator) apply(learnerID int64, passageIndex int, op func(models.ReviewState) (models.ReviewState, bool)) (*models.DailySession, bool, error) {
	sess, err := o.loadExisting(learnerID)
	if err != nil {
		return nil, false, err
	}
	if sess.IsCompleted() {
		// Terminal status never reverses
		return sess, false, nil
	}
	if passageIndex < 0 || passageIndex >= len(sess.Passages) {
		return sess, false, nil
	}

	next, ok := op(sess.Passages[passageIndex].ReviewState)
	if !ok {
		return sess, false, nil
	}
	sess.Passages[passageIndex].ReviewState = next
	Recount(sess)

	if AllTasksDone(sess) {
		if err := o.commitCompletion(sess); err != nil {
			return nil, false, err
		}
	}

	sess.UpdatedAt = o.Now()
	if err := o.sessions.Upsert(sess); err != nil {
		return nil, false, fmt.Errorf("failed to save session: %v", err)
	}
	return sess, true, nil
}

// loadExisting loads today's session and fails if it was never created
func (o *Orchestrator) loadExisting(learnerID int64) (*models.DailySession, error) {
	sess, err := o.sessions.GetByDate(learnerID, o.today())
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %v", err)
	}
	if sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}

// commitCompletion performs the one-time streak and rotation update and
// marks the session completed in memory. The streak record is persisted
// before the session status flips: if the streak write fails the session
// stays in_progress and the next save retries the whole commit, so a
// completed session always carries its streak side effect.
//
// The LastCompletionDate check makes the retry safe in the opposite
// direction too: when the streak write succeeded but the session write
// failed, the retry only flips the status instead of counting the day twice.
func (o *Orchestrator) commitCompletion(sess *models.DailySession) error {
	streak, err := o.streaks.GetOrCreate(sess.LearnerID)
	if err != nil {
		return fmt.Errorf("failed to load streak state: %v", err)
	}

	if streak.LastCompletionDate != sess.Date {
		surahs, err := o.learners.GetMemorizedSurahs(sess.LearnerID)
		if err != nil {
			return fmt.Errorf("failed to load memorized list: %v", err)
		}
		master := segmenter.Segment(surahs)

		// Tomorrow's batch starts right after the last passage reviewed
		// today, located in the master list as it exists now. The list may
		// have changed since the session was created.
		last := sess.Passages[len(sess.Passages)-1].PassageUnit

		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
		streak.TotalSessionsCompleted++
		streak.LastCompletionDate = sess.Date
		streak.RotationCursor = rotation.NextCursor(master, last)

		if err := o.streaks.Update(streak); err != nil {
			return fmt.Errorf("failed to save streak state: %v", err)
		}
	}

	now := o.Now()
	sess.Status = models.SessionCompleted
	sess.CompletedAt = &now
	return nil
}
