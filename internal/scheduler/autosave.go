// Package scheduler runs the periodic autosave of the workspace document.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nafeer/studio/internal/tasks"
)

// Config controls the autosave schedule.
type Config struct {
	Enabled  bool
	Schedule string
}

// AutosaveScheduler enqueues a snapshot save task on a cron schedule.
type AutosaveScheduler struct {
	queue  *tasks.Client
	config Config

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewAutosaveScheduler creates a new scheduler instance.
func NewAutosaveScheduler(queue *tasks.Client, config Config) *AutosaveScheduler {
	return &AutosaveScheduler{
		queue:  queue,
		config: config,
		cron:   cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler if autosave is enabled.
func (s *AutosaveScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if !s.config.Enabled {
		log.Printf("Autosave scheduler: disabled")
		return nil
	}

	entryID, err := s.cron.AddFunc(s.config.Schedule, func() {
		s.enqueueSave("autosave")
	})
	if err != nil {
		return fmt.Errorf("invalid autosave schedule '%s': %w", s.config.Schedule, err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Autosave scheduler: started with schedule '%s'. Next run: %v",
		s.config.Schedule, s.cron.Entry(entryID).Next)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *AutosaveScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Autosave scheduler: stopped")
}

// RunNow enqueues an immediate save outside of the schedule.
func (s *AutosaveScheduler) RunNow() error {
	return s.enqueueSave("manual")
}

// IsRunning returns whether the scheduler is active.
func (s *AutosaveScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRunTime returns when the next autosave will occur.
func (s *AutosaveScheduler) NextRunTime() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	next := s.cron.Entry(s.entryID).Next
	return &next
}

func (s *AutosaveScheduler) enqueueSave(reason string) error {
	_, err := s.queue.Add(tasks.SaveSnapshotTask{Reason: reason}).Save()
	if err != nil {
		log.Printf("Autosave scheduler: failed to enqueue save: %v", err)
	}
	return err
}
