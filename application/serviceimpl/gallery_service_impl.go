package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/gallery"
	"wedding-invitation/domain/navigation"
	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/logger"
)

// gallerySession is the view state owned by one guest.
type gallerySession struct {
	engine   *gallery.Engine
	spy      *navigation.Spy
	lastSeen time.Time
}

type GalleryServiceImpl struct {
	photoRepo repositories.PhotoRepository
	now       func() time.Time

	mu       sync.RWMutex
	sessions map[string]*gallerySession
}

func NewGalleryService(photoRepo repositories.PhotoRepository) services.GalleryService {
	return &GalleryServiceImpl{
		photoRepo: photoRepo,
		now:       time.Now,
		sessions:  make(map[string]*gallerySession),
	}
}

func (s *GalleryServiceImpl) session(ctx context.Context, guestID string) (*gallerySession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[guestID]
	s.mu.RUnlock()
	if ok {
		s.touch(sess)
		return sess, nil
	}

	photos, err := s.photoRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[guestID]; ok {
		sess.lastSeen = s.now()
		return sess, nil
	}
	sess = &gallerySession{
		engine:   gallery.NewEngine(photos, gallery.NewScrollLock()),
		spy:      navigation.NewSpy(),
		lastSeen: s.now(),
	}
	s.sessions[guestID] = sess
	return sess, nil
}

func (s *GalleryServiceImpl) touch(sess *gallerySession) {
	s.mu.Lock()
	sess.lastSeen = s.now()
	s.mu.Unlock()
}

// existing returns the session without creating one.
func (s *GalleryServiceImpl) existing(guestID string) *gallerySession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[guestID]
}

func view(sess *gallerySession) *dto.GalleryStateResponse {
	return dto.GalleryViewToResponse(sess.engine.View(), sess.engine.ScrollLock().Locked())
}

func (s *GalleryServiceImpl) State(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error) {
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	return view(sess), nil
}

func (s *GalleryServiceImpl) SelectCategory(ctx context.Context, guestID, category string) (*dto.GalleryStateResponse, error) {
	c, err := gallery.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if err := sess.engine.SelectCategory(c); err != nil {
		return nil, err
	}
	logger.Gallery("category_selected", "Category selected", map[string]interface{}{"guest_id": guestID, "category": c})
	return view(sess), nil
}

func (s *GalleryServiceImpl) ToggleExpand(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error) {
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	expanded := sess.engine.ToggleExpand()
	logger.Gallery("expand_toggled", "Gallery expand toggled", map[string]interface{}{"guest_id": guestID, "expanded": expanded})
	return view(sess), nil
}

func (s *GalleryServiceImpl) Open(ctx context.Context, guestID string, photoID int) (*dto.GalleryStateResponse, error) {
	if _, err := s.photoRepo.GetByID(ctx, photoID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrPhotoNotFound
		}
		return nil, err
	}
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if !sess.engine.OpenByID(photoID) {
		return nil, services.ErrPhotoNotInView
	}
	logger.Gallery("lightbox_opened", "Lightbox opened", map[string]interface{}{"guest_id": guestID, "photo_id": photoID})
	return view(sess), nil
}

func (s *GalleryServiceImpl) Close(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error) {
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	sess.engine.Close()
	return view(sess), nil
}

// Navigate with nothing selected leaves the state as it is.
func (s *GalleryServiceImpl) Navigate(ctx context.Context, guestID, direction string) (*dto.GalleryStateResponse, error) {
	dir, err := gallery.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	sess, err := s.session(ctx, guestID)
	if err != nil {
		return nil, err
	}
	moved := sess.engine.Navigate(dir)
	logger.Gallery("lightbox_navigated", "Lightbox navigated", map[string]interface{}{
		"guest_id":  guestID,
		"direction": dir.String(),
		"moved":     moved,
	})
	return view(sess), nil
}

func (s *GalleryServiceImpl) ActivateSection(guestID, section string) bool {
	sess, err := s.session(context.Background(), guestID)
	if err != nil {
		return false
	}
	return sess.spy.Activate(section)
}

func (s *GalleryServiceImpl) ActiveSection(guestID string) string {
	if sess := s.existing(guestID); sess != nil {
		return sess.spy.Active()
	}
	return navigation.Sections[0].ID
}

func (s *GalleryServiceImpl) ObserveScroll(guestID string, offsetY float64) bool {
	sess, err := s.session(context.Background(), guestID)
	if err != nil {
		return false
	}
	return sess.spy.ObserveScroll(offsetY)
}

func (s *GalleryServiceImpl) ScrollLocked(guestID string) bool {
	if sess := s.existing(guestID); sess != nil {
		return sess.engine.ScrollLock().Locked()
	}
	return false
}

// Forget closes the guest's lightbox before dropping the session so the
// lock never outlives it.
func (s *GalleryServiceImpl) Forget(guestID string) {
	s.mu.Lock()
	sess, ok := s.sessions[guestID]
	delete(s.sessions, guestID)
	s.mu.Unlock()
	if ok {
		sess.engine.Close()
	}
}

func (s *GalleryServiceImpl) PruneIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	var stale []*gallerySession
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			stale = append(stale, sess)
			delete(s.sessions, id)
		}
	}
	s.mu.Unlock()

	for _, sess := range stale {
		sess.engine.Close()
	}
	return len(stale)
}

func (s *GalleryServiceImpl) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
