package navigation

import "testing"

func TestSpyActivate(t *testing.T) {
	s := NewSpy()
	if s.Active() != "hero" {
		t.Fatalf("initial section = %q, want hero", s.Active())
	}

	if !s.Activate("gallery") {
		t.Error("switching to gallery should report a change")
	}
	if s.Activate("gallery") {
		t.Error("re-activating the same section is not a change")
	}
	if s.Activate("basement") {
		t.Error("unknown section should be ignored")
	}
	if s.Active() != "gallery" {
		t.Errorf("active = %q, want gallery", s.Active())
	}
}

func TestObserveScroll(t *testing.T) {
	s := NewSpy()
	if s.ObserveScroll(50) {
		t.Error("50px is not past the threshold")
	}
	if !s.ObserveScroll(51) || !s.Scrolled() {
		t.Error("51px should switch the navbar style")
	}
	s.ObserveScroll(0)
	if s.Scrolled() {
		t.Error("scrolling back to the top should reset the style")
	}
}
