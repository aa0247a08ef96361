package gallery

import "sync"

// ScrollLock is the page-scroll suppression flag owned by one guest's page.
// The lightbox engages it while open. Engage and Release are idempotent.
type ScrollLock struct {
	mu     sync.RWMutex
	locked bool
}

func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

func (l *ScrollLock) Engage() {
	l.mu.Lock()
	l.locked = true
	l.mu.Unlock()
}

func (l *ScrollLock) Release() {
	l.mu.Lock()
	l.locked = false
	l.mu.Unlock()
}

func (l *ScrollLock) Locked() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.locked
}
