// Package navigation tracks which page section a guest is looking at.
package navigation

import "sync"

// ScrolledThreshold is the scroll offset in pixels past which the navbar turns solid.
const ScrolledThreshold = 50

type Section struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Sections are the page sections in document order.
var Sections = []Section{
	{ID: "hero", Label: "Home"},
	{ID: "couple", Label: "Couple"},
	{ID: "timeline", Label: "Timeline"},
	{ID: "gallery", Label: "Gallery"},
	{ID: "map", Label: "Map"},
	{ID: "rsvp", Label: "RSVP"},
	{ID: "gift", Label: "Gift"},
}

// Known reports whether id names a page section.
func Known(id string) bool {
	for _, s := range Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Spy holds the active section for one guest. Unknown ids are ignored.
type Spy struct {
	mu       sync.RWMutex
	active   string
	scrolled bool
}

func NewSpy() *Spy {
	return &Spy{active: Sections[0].ID}
}

// Activate marks id active and reports whether it changed.
func (s *Spy) Activate(id string) bool {
	if !Known(id) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	changed := s.active != id
	s.active = id
	return changed
}

func (s *Spy) Active() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// ObserveScroll records the page offset and reports whether the navbar is
// in its scrolled style.
func (s *Spy) ObserveScroll(offsetY float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scrolled = offsetY > ScrolledThreshold
	return s.scrolled
}

func (s *Spy) Scrolled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scrolled
}
