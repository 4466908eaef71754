package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/youpower/youpower-api/databases"
	"github.com/youpower/youpower-api/logging"
)

// jobTimeout bounds a single run of a background job
const jobTimeout = 5 * time.Minute

// Scheduler handles periodic background jobs
type Scheduler struct {
	cron     *cron.Cron
	schedule string
	UDB      databases.UserDatabase
	log      *zap.SugaredLogger
	now      func() time.Time
}

// NewScheduler creates a new scheduler instance. schedule is a cron expression
// (descriptors such as @hourly are accepted) for releasing postponed actions.
func NewScheduler(uDB databases.UserDatabase, schedule string) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithLocation(time.UTC)),
		schedule: schedule,
		UDB:      uDB,
		log:      logging.New("scheduler"),
		now:      time.Now,
	}
}

// Start registers the jobs and begins the scheduler
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.releasePendingActions); err != nil {
		return fmt.Errorf("failed to register pending release job: %w", err)
	}

	s.cron.Start()
	s.log.Infow("scheduler started", "pendingReleaseSchedule", s.schedule)
	return nil
}

// Stop gracefully stops the scheduler, waiting for running jobs
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("scheduler stopped")
}

// releasePendingActions removes postponed actions whose date has passed
func (s *Scheduler) releasePendingActions() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	released, err := s.UDB.ReleaseDuePending(ctx, s.now())
	if err != nil {
		s.log.Errorw("failed to release pending actions", "error", err)
		return
	}
	s.log.Infow("released pending actions", "users", released)
}
