package scheduler

import (
	"os"
	"sync/atomic"
	"testing"
	"time"

	"wedding-invitation/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "scheduler-logs")
	if err != nil {
		panic(err)
	}
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestIntervalJobRunsAndRemoves(t *testing.T) {
	s := NewEventScheduler()
	s.Start()
	defer s.Stop()

	var runs int32
	if err := s.AddIntervalJob("tick", 20*time.Millisecond, func() {
		atomic.AddInt32(&runs, 1)
	}); err != nil {
		t.Fatalf("AddIntervalJob: %v", err)
	}
	if err := s.AddIntervalJob("tick", time.Second, func() {}); err == nil {
		t.Error("duplicate job id should be rejected")
	}

	deadline := time.Now().Add(2 * time.Second)
	for atomic.LoadInt32(&runs) < 2 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if atomic.LoadInt32(&runs) < 2 {
		t.Fatalf("job ran %d times, want at least 2", runs)
	}

	info, ok := s.GetJob("tick")
	if !ok || info.Interval != 20*time.Millisecond || info.LastRun == nil {
		t.Errorf("GetJob = %+v, %v", info, ok)
	}

	if err := s.RemoveJob("tick"); err != nil {
		t.Fatalf("RemoveJob: %v", err)
	}
	if len(s.ListJobs()) != 0 {
		t.Error("job still listed after removal")
	}
}

func TestAddIntervalJobRejectsZero(t *testing.T) {
	s := NewEventScheduler()
	if err := s.AddIntervalJob("bad", 0, func() {}); err == nil {
		t.Error("zero interval should be rejected")
	}
}

func TestCronJobSchedulesNextRun(t *testing.T) {
	s := NewEventScheduler()
	s.Start()
	defer s.Stop()

	if err := s.AddJob("nightly", "30 3 * * *", func() {}); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	info, ok := s.GetJob("nightly")
	if !ok {
		t.Fatal("cron job not listed")
	}
	if info.CronExpr != "30 3 * * *" || info.Interval != 0 {
		t.Errorf("job info = %+v", info)
	}
	if info.NextRun == nil || info.NextRun.IsZero() {
		t.Fatal("cron job has no next run")
	}
	next := info.NextRun.UTC()
	if next.Hour() != 3 || next.Minute() != 30 {
		t.Errorf("next run = %v, want 03:30 UTC", next)
	}
	if !next.After(time.Now()) {
		t.Errorf("next run %v is in the past", next)
	}
}

func TestAddJobRejectsBadCron(t *testing.T) {
	s := NewEventScheduler()
	s.Start()
	defer s.Stop()

	if err := s.AddJob("bad", "every now and then", func() {}); err == nil {
		t.Error("malformed cron expression should be rejected")
	}
	if _, ok := s.GetJob("bad"); ok {
		t.Error("rejected job should not be listed")
	}
}
