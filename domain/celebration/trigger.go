// Package celebration produces the confetti bursts shown after a guest replies.
package celebration

import (
	"context"
	"math/rand"
	"time"
)

const (
	DefaultDuration = 30 * time.Second
	DefaultInterval = 250 * time.Millisecond

	maxParticles  = 50.0
	startVelocity = 30
	spread        = 360
	ticks         = 60
	zIndex        = 50
)

type Origin struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Burst is one confetti emission, in the shape canvas-confetti accepts.
type Burst struct {
	ParticleCount float64 `json:"particleCount"`
	Origin        Origin  `json:"origin"`
	StartVelocity int     `json:"startVelocity"`
	Spread        int     `json:"spread"`
	Ticks         int     `json:"ticks"`
	ZIndex        int     `json:"zIndex"`
}

// Sink receives the bursts of one tick.
type Sink interface {
	Emit(bursts []Burst)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(bursts []Burst)

func (f SinkFunc) Emit(bursts []Burst) { f(bursts) }

// Trigger emits two bursts per interval, one from each side of the screen,
// with a particle count that decays linearly to zero over Duration.
type Trigger struct {
	Duration time.Duration
	Interval time.Duration
	Now      func() time.Time
	Rand     func() float64
}

func NewTrigger() *Trigger {
	return &Trigger{
		Duration: DefaultDuration,
		Interval: DefaultInterval,
		Now:      time.Now,
		Rand:     rand.Float64,
	}
}

// Tick returns the bursts for the given remaining time, or nil once no time
// is left.
func (t *Trigger) Tick(timeLeft time.Duration) []Burst {
	if timeLeft <= 0 || t.Duration <= 0 {
		return nil
	}
	count := maxParticles * (float64(timeLeft) / float64(t.Duration))
	return []Burst{
		t.burst(count, t.between(0.1, 0.3)),
		t.burst(count, t.between(0.7, 0.9)),
	}
}

func (t *Trigger) between(lo, hi float64) float64 {
	return t.Rand()*(hi-lo) + lo
}

func (t *Trigger) burst(count, x float64) Burst {
	return Burst{
		ParticleCount: count,
		// particles fall, so start a little above the random height
		Origin:        Origin{X: x, Y: t.Rand() - 0.2},
		StartVelocity: startVelocity,
		Spread:        spread,
		Ticks:         ticks,
		ZIndex:        zIndex,
	}
}

// Run emits bursts until Duration has elapsed or ctx is cancelled.
func (t *Trigger) Run(ctx context.Context, sink Sink) {
	end := t.Now().Add(t.Duration)
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bursts := t.Tick(end.Sub(t.Now()))
			if bursts == nil {
				return
			}
			sink.Emit(bursts)
		}
	}
}
