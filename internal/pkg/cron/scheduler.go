package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type entry struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error
}

// Scheduler runs named maintenance jobs on fixed intervals in background
// goroutines. Each job runs once immediately on Start, so an hourly job
// does not wait an hour after boot.
type Scheduler struct {
	mu      sync.Mutex
	entries []entry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

// AddJob registers a job. Jobs added after Start are ignored.
func (s *Scheduler) AddJob(name string, interval time.Duration, fn func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		slog.Warn("Scheduler already started, job ignored", "job", name)
		return
	}

	s.entries = append(s.entries, entry{name: name, interval: interval, run: fn})
	slog.Info("Scheduled job registered", "job", name, "interval", interval)
}

func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true

	for _, e := range s.entries {
		s.wg.Add(1)
		go s.loop(e)
	}

	slog.Info("Scheduler started", "jobs", len(s.entries))
}

// Stop cancels all jobs and blocks until their goroutines exit.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
	slog.Info("Scheduler stopped")
}

func (s *Scheduler) loop(e entry) {
	defer s.wg.Done()

	s.execute(e)

	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.execute(e)
		}
	}
}

func (s *Scheduler) execute(e entry) {
	start := time.Now()
	if err := e.run(s.ctx); err != nil {
		slog.Error("Scheduled job failed", "job", e.name, "error", err, "took", time.Since(start))
		return
	}
	slog.Debug("Scheduled job completed", "job", e.name, "took", time.Since(start))
}
