package celebration

import (
	"context"
	"sync"
	"testing"
	"time"
)

func fixedTrigger(r float64) *Trigger {
	return &Trigger{
		Duration: 30 * time.Second,
		Interval: 250 * time.Millisecond,
		Now:      time.Now,
		Rand:     func() float64 { return r },
	}
}

func TestTickDecaysLinearly(t *testing.T) {
	tr := fixedTrigger(0.5)

	full := tr.Tick(30 * time.Second)
	half := tr.Tick(15 * time.Second)
	if len(full) != 2 || len(half) != 2 {
		t.Fatalf("expected two bursts per tick, got %d and %d", len(full), len(half))
	}
	if full[0].ParticleCount != 50 {
		t.Errorf("particle count at start = %v, want 50", full[0].ParticleCount)
	}
	if half[0].ParticleCount != 25 {
		t.Errorf("particle count halfway = %v, want 25", half[0].ParticleCount)
	}
	if tr.Tick(0) != nil {
		t.Error("no bursts once time has run out")
	}
}

func TestTickOrigins(t *testing.T) {
	for _, r := range []float64{0, 0.5, 0.999} {
		bursts := fixedTrigger(r).Tick(time.Second)
		left, right := bursts[0].Origin, bursts[1].Origin
		if left.X < 0.1 || left.X > 0.3 {
			t.Errorf("left origin x = %v", left.X)
		}
		if right.X < 0.7 || right.X > 0.9 {
			t.Errorf("right origin x = %v", right.X)
		}
		if left.Y < -0.2 || left.Y >= 0.8 {
			t.Errorf("origin y = %v", left.Y)
		}
		if bursts[0].Spread != 360 || bursts[0].StartVelocity != 30 || bursts[0].Ticks != 60 {
			t.Errorf("unexpected burst defaults %+v", bursts[0])
		}
	}
}

type recorder struct {
	mu     sync.Mutex
	counts []float64
}

func (r *recorder) Emit(bursts []Burst) {
	r.mu.Lock()
	r.counts = append(r.counts, bursts[0].ParticleCount)
	r.mu.Unlock()
}

func TestRunStopsAfterDuration(t *testing.T) {
	tr := fixedTrigger(0.5)
	tr.Duration = 120 * time.Millisecond
	tr.Interval = 10 * time.Millisecond

	rec := &recorder{}
	done := make(chan struct{})
	go func() {
		tr.Run(context.Background(), rec)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after its duration")
	}

	if len(rec.counts) == 0 {
		t.Fatal("expected at least one tick")
	}
	for i := 1; i < len(rec.counts); i++ {
		if rec.counts[i] > rec.counts[i-1] {
			t.Errorf("particle count grew from %v to %v", rec.counts[i-1], rec.counts[i])
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	tr := fixedTrigger(0.5)
	tr.Interval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tr.Run(ctx, SinkFunc(func([]Burst) {}))
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run ignored cancellation")
	}
}
