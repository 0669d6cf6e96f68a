package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const reminderJobTimeout = 5 * time.Minute

// PendingReminder sends reminders about reports still awaiting review.
type PendingReminder interface {
	RemindPendingReviews(ctx context.Context) error
}

type ReminderScheduler struct {
	cronEngine        *cron.Cron
	reminder          PendingReminder
	logger            *logrus.Entry
	cronSpecReminders string
}

func NewReminderScheduler(reminder PendingReminder, logger *logrus.Entry, cronSpecReminders string) *ReminderScheduler {
	return &ReminderScheduler{
		cronEngine:        cron.New(cron.WithLocation(time.Local)),
		reminder:          reminder,
		logger:            logger,
		cronSpecReminders: cronSpecReminders,
	}
}

// Start registers the jobs and starts the cron engine.
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler")

	if _, err := s.cronEngine.AddFunc(s.cronSpecReminders, s.runPendingReminders); err != nil {
		return fmt.Errorf("could not add pending review reminder job %q: %w", s.cronSpecReminders, err)
	}

	s.cronEngine.Start()
	s.logger.WithField("spec", s.cronSpecReminders).Info("Reminder scheduler started")
	return nil
}

func (s *ReminderScheduler) runPendingReminders() {
	s.logger.Info("Cron job triggered for pending review reminders")
	ctx, cancel := context.WithTimeout(context.Background(), reminderJobTimeout)
	defer cancel()
	if err := s.reminder.RemindPendingReviews(ctx); err != nil {
		s.logger.WithError(err).Error("Error during pending review reminders")
	}
}

// Stop waits for running jobs to finish.
func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler")
	ctx := s.cronEngine.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped")
}
