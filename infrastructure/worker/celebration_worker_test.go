package worker

import (
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"wedding-invitation/domain/celebration"
	"wedding-invitation/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "worker-logs")
	if err != nil {
		panic(err)
	}
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type recordingBroadcaster struct {
	mu    sync.Mutex
	types []string
}

func (b *recordingBroadcaster) BroadcastToUser(guestID string, messageType string, data interface{}) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.types = append(b.types, guestID+":"+messageType)
	return 1
}

func (b *recordingBroadcaster) snapshot() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.types...)
}

func shortTrigger() *celebration.Trigger {
	t := celebration.NewTrigger()
	t.Duration = 60 * time.Millisecond
	t.Interval = 10 * time.Millisecond
	return t
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestCelebrationConfirmsThenBursts(t *testing.T) {
	b := &recordingBroadcaster{}
	w := NewCelebrationWorker(b)
	w.SetTriggerFactory(shortTrigger)
	w.Start()
	defer w.Stop()

	var confirmed atomic.Bool
	if !w.Celebrate(CelebrationRequest{
		GuestID:   "g1",
		Delay:     10 * time.Millisecond,
		OnConfirm: func() { confirmed.Store(true) },
	}) {
		t.Fatal("Celebrate rejected while running")
	}

	waitFor(t, func() bool { return confirmed.Load() && w.ActiveCount() == 0 })

	got := b.snapshot()
	if len(got) < 2 {
		t.Fatalf("messages = %v", got)
	}
	if got[0] != "g1:"+MessageRSVPConfirmed {
		t.Errorf("first message = %s", got[0])
	}
	for _, m := range got[1:] {
		if m != "g1:"+MessageCelebration {
			t.Errorf("unexpected message %s", m)
		}
	}
}

func TestStopCancelsPendingConfirmation(t *testing.T) {
	b := &recordingBroadcaster{}
	w := NewCelebrationWorker(b)
	w.Start()

	var confirmed atomic.Bool
	w.Celebrate(CelebrationRequest{GuestID: "g2", Delay: time.Hour, OnConfirm: func() { confirmed.Store(true) }})
	waitFor(t, func() bool { return w.ActiveCount() == 1 })

	w.Stop()
	if confirmed.Load() {
		t.Error("confirmation ran after stop")
	}
	if len(b.snapshot()) != 0 {
		t.Errorf("messages sent after stop: %v", b.snapshot())
	}
	if w.Celebrate(CelebrationRequest{GuestID: "g2"}) {
		t.Error("stopped worker accepted a request")
	}
}
