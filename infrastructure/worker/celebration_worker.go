package worker

import (
	"context"
	"sync"
	"time"

	"wedding-invitation/domain/celebration"
	"wedding-invitation/infrastructure/websocket"
	"wedding-invitation/pkg/logger"
)

// Message types pushed to a guest's browser.
const (
	MessageRSVPConfirmed = "rsvp_confirmed"
	MessageCelebration   = "celebration"
)

// Broadcaster delivers a message to every connection of one guest.
type Broadcaster interface {
	BroadcastToUser(guestID string, messageType string, data interface{}) int
}

// CelebrationRequest asks for a guest's confirmation to be shown after Delay,
// followed by the confetti run.
type CelebrationRequest struct {
	GuestID   string
	Delay     time.Duration
	OnConfirm func()
}

// CelebrationWorker runs confetti sequences for guests who just replied.
type CelebrationWorker struct {
	broadcaster Broadcaster
	newTrigger  func() *celebration.Trigger

	// Worker control
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	isRunning bool
	mu        sync.Mutex
	triggerCh chan CelebrationRequest

	// one run per guest; a new reply restarts it
	active map[string]*celebrationRun
}

type celebrationRun struct {
	cancel context.CancelFunc
}

// NewCelebrationWorker sends bursts through broadcaster, or the process-wide
// websocket hub when nil.
func NewCelebrationWorker(broadcaster Broadcaster) *CelebrationWorker {
	if broadcaster == nil {
		broadcaster = websocket.Manager
	}
	return &CelebrationWorker{
		broadcaster: broadcaster,
		newTrigger:  celebration.NewTrigger,
		triggerCh:   make(chan CelebrationRequest, 32),
		active:      make(map[string]*celebrationRun),
	}
}

// SetTriggerFactory replaces how each run's timing is built.
func (w *CelebrationWorker) SetTriggerFactory(f func() *celebration.Trigger) {
	w.newTrigger = f
}

// Celebrate queues a request. It returns false when the worker is stopped
// or its queue is full.
func (w *CelebrationWorker) Celebrate(req CelebrationRequest) bool {
	if !w.IsRunning() {
		return false
	}
	select {
	case w.triggerCh <- req:
		return true
	default:
		logger.Warn(logger.CategoryRSVP, "celebration_dropped", "Celebration queue full", map[string]interface{}{
			"guest_id": req.GuestID,
		})
		return false
	}
}

func (w *CelebrationWorker) Start() {
	w.mu.Lock()
	if w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = true
	w.ctx, w.cancel = context.WithCancel(context.Background())
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run()

	logger.RSVP("celebration_worker_started", "Celebration worker started", nil)
}

// Stop cancels pending confirmations and running sequences and waits for them.
func (w *CelebrationWorker) Stop() {
	w.mu.Lock()
	if !w.isRunning {
		w.mu.Unlock()
		return
	}
	w.isRunning = false
	w.mu.Unlock()

	w.cancel()
	w.wg.Wait()
	logger.RSVP("celebration_worker_stopped", "Celebration worker stopped", nil)
}

func (w *CelebrationWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// ActiveCount is the number of guests with a pending or running celebration.
func (w *CelebrationWorker) ActiveCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.active)
}

func (w *CelebrationWorker) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case req := <-w.triggerCh:
			w.start(req)
		}
	}
}

func (w *CelebrationWorker) start(req CelebrationRequest) {
	ctx, cancel := context.WithCancel(w.ctx)
	r := &celebrationRun{cancel: cancel}

	w.mu.Lock()
	if prev, ok := w.active[req.GuestID]; ok {
		prev.cancel()
	}
	w.active[req.GuestID] = r
	w.mu.Unlock()

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.finish(req.GuestID, r)
		w.celebrate(ctx, req)
	}()
}

func (w *CelebrationWorker) finish(guestID string, r *celebrationRun) {
	r.cancel()
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.active[guestID] == r {
		delete(w.active, guestID)
	}
}

func (w *CelebrationWorker) celebrate(ctx context.Context, req CelebrationRequest) {
	if req.Delay > 0 {
		timer := time.NewTimer(req.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	if req.OnConfirm != nil {
		req.OnConfirm()
	}
	w.broadcaster.BroadcastToUser(req.GuestID, MessageRSVPConfirmed, nil)

	logger.RSVP("celebration_started", "Celebration started", map[string]interface{}{
		"guest_id": req.GuestID,
	})

	bursts := 0
	w.newTrigger().Run(ctx, celebration.SinkFunc(func(b []celebration.Burst) {
		bursts++
		w.broadcaster.BroadcastToUser(req.GuestID, MessageCelebration, b)
	}))

	logger.RSVP("celebration_finished", "Celebration finished", map[string]interface{}{
		"guest_id": req.GuestID,
		"ticks":    bursts,
	})
}
