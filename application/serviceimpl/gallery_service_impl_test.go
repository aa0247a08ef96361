package serviceimpl

import (
	"context"
	"errors"
	"testing"
	"time"

	"wedding-invitation/domain/gallery"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/services"
	"wedding-invitation/infrastructure/memory"
)

func testPhotos() []models.Photo {
	cats := []models.Category{
		models.CategoryCeremony, models.CategoryCouple, models.CategoryReception,
		models.CategoryCouple, models.CategoryCeremony, models.CategoryReception,
		models.CategoryDetails, models.CategoryCouple, models.CategoryCeremony,
		models.CategoryReception,
	}
	photos := make([]models.Photo, len(cats))
	for i, c := range cats {
		photos[i] = models.Photo{ID: i + 1, Category: c, ThumbKey: "t.jpg", FullKey: "f.jpg"}
	}
	return photos
}

func newTestGalleryService() *GalleryServiceImpl {
	return NewGalleryService(memory.NewPhotoRepository(testPhotos())).(*GalleryServiceImpl)
}

func TestGalleryDefaultState(t *testing.T) {
	svc := newTestGalleryService()
	st, err := svc.State(context.Background(), "g")
	if err != nil {
		t.Fatalf("State: %v", err)
	}
	if st.ActiveCategory != "all" || st.Expanded || st.Selected != nil {
		t.Errorf("unexpected initial state %+v", st)
	}
	if len(st.Visible) != gallery.VisibleCap || !st.CanExpand || st.Total != 10 {
		t.Errorf("visible=%d canExpand=%v total=%d", len(st.Visible), st.CanExpand, st.Total)
	}
	if st.Visible[0].ThumbURL != "/images/thumbnails/t.jpg" {
		t.Errorf("thumb url = %q", st.Visible[0].ThumbURL)
	}

	st, _ = svc.ToggleExpand(context.Background(), "g")
	if len(st.Visible) != 10 {
		t.Errorf("expanded grid shows %d", len(st.Visible))
	}
}

func TestGallerySelectCategory(t *testing.T) {
	ctx := context.Background()
	svc := newTestGalleryService()
	svc.ToggleExpand(ctx, "g")

	st, err := svc.SelectCategory(ctx, "g", "Couple")
	if err != nil {
		t.Fatalf("SelectCategory: %v", err)
	}
	if st.Expanded || st.CanExpand || st.Total != 3 {
		t.Errorf("state after filter = %+v", st)
	}
	for _, p := range st.Visible {
		if p.Category != "couple" {
			t.Errorf("photo %d has category %s", p.ID, p.Category)
		}
	}

	if _, err := svc.SelectCategory(ctx, "g", "party"); !errors.Is(err, gallery.ErrUnknownCategory) {
		t.Errorf("err = %v", err)
	}
}

func TestGalleryLightbox(t *testing.T) {
	ctx := context.Background()
	svc := newTestGalleryService()
	svc.SelectCategory(ctx, "g", "couple")

	if _, err := svc.Open(ctx, "g", 1); !errors.Is(err, services.ErrPhotoNotInView) {
		t.Errorf("opening a ceremony photo under couple: %v", err)
	}
	if _, err := svc.Open(ctx, "g", 99); !errors.Is(err, services.ErrPhotoNotFound) {
		t.Errorf("opening a missing photo: %v", err)
	}

	st, err := svc.Open(ctx, "g", 8)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if st.SelectedIndex != 2 || !st.ScrollLocked || !svc.ScrollLocked("g") {
		t.Errorf("after open: index=%d locked=%v", st.SelectedIndex, st.ScrollLocked)
	}

	st, _ = svc.Navigate(ctx, "g", "next")
	if st.Selected.ID != 2 {
		t.Errorf("next from last couple photo = %d, want 2", st.Selected.ID)
	}
	st, _ = svc.Navigate(ctx, "g", "prev")
	if st.Selected.ID != 8 {
		t.Errorf("prev back = %d, want 8", st.Selected.ID)
	}
	if _, err := svc.Navigate(ctx, "g", "sideways"); !errors.Is(err, gallery.ErrUnknownDirection) {
		t.Errorf("err = %v", err)
	}

	st, _ = svc.Close(ctx, "g")
	if st.Selected != nil || st.ScrollLocked || svc.ScrollLocked("g") {
		t.Error("close should clear the selection and release the lock")
	}

	st, err = svc.Navigate(ctx, "g", "next")
	if err != nil || st.Selected != nil {
		t.Errorf("navigate with nothing open should be a no-op: %v %+v", err, st.Selected)
	}
}

func TestGallerySessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := newTestGalleryService()

	svc.SelectCategory(ctx, "a", "details")
	svc.Open(ctx, "a", 7)

	st, _ := svc.State(ctx, "b")
	if st.ActiveCategory != "all" || st.Selected != nil || svc.ScrollLocked("b") {
		t.Errorf("guest b sees guest a's state: %+v", st)
	}

	if !svc.ActivateSection("a", "gallery") || svc.ActiveSection("a") != "gallery" {
		t.Error("section not recorded")
	}
	if svc.ActiveSection("b") != "hero" {
		t.Errorf("guest b section = %s", svc.ActiveSection("b"))
	}
	if svc.ActivateSection("a", "basement") {
		t.Error("unknown section accepted")
	}
}

func TestGalleryPruneIdle(t *testing.T) {
	ctx := context.Background()
	svc := newTestGalleryService()
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	svc.Open(ctx, "old", 1)
	now = now.Add(2 * time.Hour)
	svc.State(ctx, "fresh")

	if n := svc.PruneIdle(time.Hour); n != 1 {
		t.Fatalf("pruned %d, want 1", n)
	}
	if svc.SessionCount() != 1 || svc.ScrollLocked("old") {
		t.Error("stale session not removed")
	}

	svc.Forget("fresh")
	if svc.SessionCount() != 0 {
		t.Error("Forget left the session")
	}
}
