package services

import (
	"context"
	"errors"
	"time"

	"wedding-invitation/domain/dto"
)

var (
	ErrPhotoNotFound  = errors.New("photo not found")
	ErrPhotoNotInView = errors.New("photo is not in the current filter")
)

// GalleryService keeps one gallery engine and scroll spy per guest.
type GalleryService interface {
	State(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error)

	SelectCategory(ctx context.Context, guestID, category string) (*dto.GalleryStateResponse, error)
	ToggleExpand(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error)
	Open(ctx context.Context, guestID string, photoID int) (*dto.GalleryStateResponse, error)
	Close(ctx context.Context, guestID string) (*dto.GalleryStateResponse, error)
	Navigate(ctx context.Context, guestID, direction string) (*dto.GalleryStateResponse, error)

	// ActivateSection records the section the guest's browser reports as visible.
	ActivateSection(guestID, section string) bool
	ActiveSection(guestID string) string
	ObserveScroll(guestID string, offsetY float64) bool
	ScrollLocked(guestID string) bool

	// Forget drops the guest's view state.
	Forget(guestID string)
	// PruneIdle forgets guests not seen for maxIdle and returns how many.
	PruneIdle(maxIdle time.Duration) int
	SessionCount() int
}
