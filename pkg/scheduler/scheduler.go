package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"wedding-invitation/pkg/logger"
)

type EventScheduler interface {
	Start()
	Stop()
	AddJob(id, cronExpr string, task func()) error
	AddIntervalJob(id string, every time.Duration, task func()) error
	RemoveJob(id string) error
	GetJob(id string) (*JobInfo, bool)
	ListJobs() map[string]*JobInfo
	IsRunning() bool
}

type JobInfo struct {
	ID       string
	CronExpr string        // empty for interval jobs
	Interval time.Duration // zero for cron jobs
	Job      *gocron.Job
	IsActive bool
	LastRun  *time.Time
	NextRun  *time.Time
}

type GocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*JobInfo
	mu        sync.RWMutex
	running   bool
}

func NewEventScheduler() EventScheduler {
	scheduler := gocron.NewScheduler(time.UTC)
	scheduler.SingletonModeAll()

	return &GocronScheduler{
		scheduler: scheduler,
		jobs:      make(map[string]*JobInfo),
		running:   false,
	}
}

func (s *GocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.SchedulerWarn("start", "Scheduler is already running", nil)
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Scheduler("started", "Event scheduler started", nil)
}

func (s *GocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		logger.SchedulerWarn("stop", "Scheduler is not running", nil)
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Scheduler("stopped", "Event scheduler stopped", nil)
}

func (s *GocronScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// AddJob runs task on a five-field cron schedule in UTC.
func (s *GocronScheduler) AddJob(id, cronExpr string, task func()) error {
	return s.register(&JobInfo{ID: id, CronExpr: cronExpr}, task)
}

// AddIntervalJob runs task every interval, starting one interval from now.
func (s *GocronScheduler) AddIntervalJob(id string, every time.Duration, task func()) error {
	if every <= 0 {
		return fmt.Errorf("job %s: interval must be positive", id)
	}
	return s.register(&JobInfo{ID: id, Interval: every}, task)
}

func (s *GocronScheduler) register(info *JobInfo, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := info.ID
	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job with ID %s already exists", id)
	}

	run := func() {
		now := time.Now()

		s.mu.Lock()
		if jobInfo, exists := s.jobs[id]; exists {
			jobInfo.LastRun = &now
			if jobInfo.Job != nil {
				nextRun := jobInfo.Job.NextRun()
				jobInfo.NextRun = &nextRun
			}
		}
		s.mu.Unlock()

		task()
	}

	var (
		job *gocron.Job
		err error
	)
	if info.CronExpr != "" {
		job, err = s.scheduler.Cron(info.CronExpr).Do(run)
	} else {
		job, err = s.scheduler.Every(info.Interval).WaitForSchedule().Do(run)
	}
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}

	nextRun := job.NextRun()
	info.Job = job
	info.IsActive = true
	info.NextRun = &nextRun
	s.jobs[id] = info

	logger.Scheduler("job_added", "Job added", map[string]interface{}{
		"job_id":   id,
		"cron":     info.CronExpr,
		"interval": info.Interval.String(),
		"next_run": nextRun.Format(time.RFC3339),
	})
	return nil
}

func (s *GocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobInfo, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job with ID %s not found", id)
	}

	if jobInfo.Job != nil {
		s.scheduler.RemoveByReference(jobInfo.Job)
	}

	delete(s.jobs, id)
	logger.Scheduler("job_removed", "Job removed", map[string]interface{}{"job_id": id})
	return nil
}

func (s *GocronScheduler) GetJob(id string) (*JobInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobInfo, exists := s.jobs[id]
	if !exists {
		return nil, false
	}
	return snapshot(jobInfo), true
}

func (s *GocronScheduler) ListJobs() map[string]*JobInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	jobs := make(map[string]*JobInfo, len(s.jobs))
	for id, jobInfo := range s.jobs {
		jobs[id] = snapshot(jobInfo)
	}
	return jobs
}

// snapshot copies a job so callers never share the scheduler's pointers.
func snapshot(jobInfo *JobInfo) *JobInfo {
	info := &JobInfo{
		ID:       jobInfo.ID,
		CronExpr: jobInfo.CronExpr,
		Interval: jobInfo.Interval,
		Job:      jobInfo.Job,
		IsActive: jobInfo.IsActive,
	}
	if jobInfo.LastRun != nil {
		lastRun := *jobInfo.LastRun
		info.LastRun = &lastRun
	}
	if jobInfo.Job != nil {
		nextRun := jobInfo.Job.NextRun()
		info.NextRun = &nextRun
	} else if jobInfo.NextRun != nil {
		nextRun := *jobInfo.NextRun
		info.NextRun = &nextRun
	}
	return info
}
