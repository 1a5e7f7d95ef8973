package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobRunsImmediatelyOnStart(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 1)
	s.AddJob("sweep", time.Hour, func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
}

func TestJobRepeatsOnInterval(t *testing.T) {
	s := NewScheduler()
	ran := make(chan struct{}, 8)
	s.AddJob("sweep", 5*time.Millisecond, func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start()
	defer s.Stop()

	for i := 0; i < 2; i++ {
		select {
		case <-ran:
		case <-time.After(2 * time.Second):
			t.Fatalf("job run %d never happened", i+1)
		}
	}
}

func TestStopWaitsForJobGoroutines(t *testing.T) {
	s := NewScheduler()
	s.AddJob("ok", time.Hour, func(ctx context.Context) error { return nil })
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})

	s.Start()

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop did not return")
	}
}

func TestAddJobAfterStartIsIgnored(t *testing.T) {
	s := NewScheduler()
	s.Start()
	defer s.Stop()

	ran := make(chan struct{}, 1)
	s.AddJob("late", time.Millisecond, func(ctx context.Context) error {
		ran <- struct{}{}
		return nil
	})

	select {
	case <-ran:
		t.Fatal("job added after start should not run")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Len(t, s.entries, 0)
}
