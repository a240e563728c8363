package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
)

// Refresher refreshes the dashboard board for a set of cities.
type Refresher interface {
	RefreshDashboard(ctx context.Context, names []string) error
}

// Scheduler periodically refreshes the dashboard for the configured cities.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   Refresher
	cities    []string
	interval  time.Duration
	timeout   time.Duration
}

// New creates a new Scheduler.
func New(cities []string, interval time.Duration, service Refresher) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		cities:    cities,
		interval:  interval,
		timeout:   30 * time.Second,
	}
}

// Start schedules the periodic job and starts the underlying scheduler.
// The first run happens immediately.
func (s *Scheduler) Start() error {
	if len(s.cities) == 0 {
		log.Println("scheduler: no dashboard cities configured; nothing to schedule")
		return nil
	}

	interval := s.interval
	if interval <= 0 {
		interval = 15 * time.Minute
	}

	_, err := s.scheduler.Every(interval).Do(s.runOnce)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// runOnce refreshes the board once. Failures are logged; the previous board stays.
func (s *Scheduler) runOnce() {
	runID := uuid.NewString()
	log.Printf("scheduler: run %s refreshing dashboard for %d cities", runID, len(s.cities))

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := s.service.RefreshDashboard(ctx, s.cities); err != nil {
		log.Printf("scheduler: run %s failed after %s: %v", runID, time.Since(start).Round(time.Millisecond), err)
		return
	}
	log.Printf("scheduler: run %s completed in %s", runID, time.Since(start).Round(time.Millisecond))
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
