package countdown

import (
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	now := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	target := now.Add(26*time.Hour + 3*time.Minute + 5*time.Second + 900*time.Millisecond)

	got := Compute(now, target)
	want := Breakdown{Days: 1, Hours: 2, Minutes: 3, Seconds: 5}
	if got != want {
		t.Fatalf("Compute = %+v, want %+v", got, want)
	}
}

func TestComputeAfterTarget(t *testing.T) {
	target := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	for _, now := range []time.Time{target, target.Add(time.Hour)} {
		got := Compute(now, target)
		if !got.Done || got.Total() != 0 {
			t.Errorf("Compute(%v) = %+v, want zeros with Done", now, got)
		}
	}
}

func TestComputeDecreases(t *testing.T) {
	target := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)
	now := target.Add(-50 * time.Hour)

	prev := Compute(now, target).Total()
	for i := 0; i < 120; i++ {
		now = now.Add(time.Second)
		cur := Compute(now, target).Total()
		if cur >= prev {
			t.Fatalf("countdown did not decrease at step %d: %v then %v", i, prev, cur)
		}
		prev = cur
	}
}

func TestPadded(t *testing.T) {
	b := Breakdown{Days: 120, Hours: 3, Minutes: 0, Seconds: 9}
	got := b.Padded()
	want := [4]string{"120", "03", "00", "09"}
	if got != want {
		t.Errorf("Padded = %v, want %v", got, want)
	}
}
