package gallery

import (
	"sync"

	"wedding-invitation/domain/models"
)

// State is a snapshot of one guest's gallery view.
type State struct {
	ActiveCategory models.Category
	Expanded       bool
	Selected       *models.Photo
}

// Engine owns the gallery view state for one guest. Safe for concurrent use.
type Engine struct {
	mu     sync.Mutex
	photos []models.Photo
	state  State
	lock   *ScrollLock
}

// NewEngine starts on the "all" filter, collapsed, with the lightbox closed.
// A nil lock gets a private one.
func NewEngine(photos []models.Photo, lock *ScrollLock) *Engine {
	if lock == nil {
		lock = NewScrollLock()
	}
	return &Engine{
		photos: photos,
		state:  State{ActiveCategory: models.CategoryAll},
		lock:   lock,
	}
}

// ScrollLock returns the lock the lightbox drives.
func (e *Engine) ScrollLock() *ScrollLock {
	return e.lock
}

// SelectCategory switches the filter and collapses the grid. An open lightbox
// whose photo falls outside the new filter is closed.
func (e *Engine) SelectCategory(c models.Category) error {
	if !c.IsFilter() {
		return ErrUnknownCategory
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.ActiveCategory = c
	e.state.Expanded = false
	if e.state.Selected != nil && indexOf(e.filtered(), e.state.Selected.ID) < 0 {
		e.closeLocked()
	}
	return nil
}

// ToggleExpand flips between the capped and the full grid.
func (e *Engine) ToggleExpand() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Expanded = !e.state.Expanded
	return e.state.Expanded
}

// Open shows photo in the lightbox. It reports false and changes nothing when
// the photo is not part of the current filter.
func (e *Engine) Open(photo models.Photo) bool {
	return e.OpenByID(photo.ID)
}

// OpenByID is Open for a photo id.
func (e *Engine) OpenByID(id int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := e.filtered()
	i := indexOf(filtered, id)
	if i < 0 {
		return false
	}
	p := filtered[i]
	e.state.Selected = &p
	e.lock.Engage()
	return true
}

// Close hides the lightbox and always leaves scrolling enabled.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closeLocked()
}

func (e *Engine) closeLocked() {
	e.state.Selected = nil
	e.lock.Release()
}

// Navigate moves the lightbox one photo in dir, wrapping at both ends.
// It is a no-op returning false when nothing is selected or the selected
// photo is no longer in the filtered set.
func (e *Engine) Navigate(dir Direction) bool {
	if dir != Next && dir != Prev {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Selected == nil {
		return false
	}
	filtered := e.filtered()
	n := len(filtered)
	if n == 0 {
		return false
	}
	i := indexOf(filtered, e.state.Selected.ID)
	if i < 0 {
		return false
	}
	p := filtered[((i+int(dir))%n+n)%n]
	e.state.Selected = &p
	return true
}

// Filtered returns the photos matching the active category.
func (e *Engine) Filtered() []models.Photo {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filtered()
}

// Visible returns the grid window: the first VisibleCap filtered photos
// unless expanded.
func (e *Engine) Visible() []models.Photo {
	e.mu.Lock()
	defer e.mu.Unlock()
	filtered := e.filtered()
	if !e.state.Expanded && len(filtered) > VisibleCap {
		return filtered[:VisibleCap]
	}
	return filtered
}

// CanExpand reports whether the expand toggle should be shown at all.
func (e *Engine) CanExpand() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.filtered()) > VisibleCap
}

// State returns a copy of the current view state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := e.state
	if s.Selected != nil {
		p := *s.Selected
		s.Selected = &p
	}
	return s
}

// View is everything the page draws for the gallery, taken under one lock.
type View struct {
	State     State
	Filtered  []models.Photo
	Visible   []models.Photo
	CanExpand bool
}

func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := View{State: e.state, Filtered: e.filtered()}
	if v.State.Selected != nil {
		p := *v.State.Selected
		v.State.Selected = &p
	}
	v.CanExpand = len(v.Filtered) > VisibleCap
	v.Visible = v.Filtered
	if !v.State.Expanded && v.CanExpand {
		v.Visible = v.Filtered[:VisibleCap]
	}
	return v
}

func (e *Engine) filtered() []models.Photo {
	return Filter(e.photos, e.state.ActiveCategory)
}
