package memory

import (
	"context"
	"errors"
	"testing"

	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
)

func TestKVStore(t *testing.T) {
	ctx := context.Background()
	s := NewKVStore()

	if _, err := s.Get(ctx, "k"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Get missing = %v", err)
	}
	_ = s.Set(ctx, "k", "v")
	if v, _ := s.Get(ctx, "k"); v != "v" {
		t.Errorf("Get = %q", v)
	}
	_ = s.Delete(ctx, "k")
	if _, err := s.Get(ctx, "k"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
}

func TestPhotoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewPhotoRepository([]models.Photo{
		{ID: 1, Category: models.CategoryCeremony},
		{ID: 2, Category: models.CategoryCouple},
		{ID: 3, Category: models.CategoryCeremony},
	})

	p, err := repo.GetByID(ctx, 2)
	if err != nil || p.Category != models.CategoryCouple {
		t.Fatalf("GetByID(2) = %+v, %v", p, err)
	}
	if _, err := repo.GetByID(ctx, 9); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("GetByID(9) = %v", err)
	}

	ceremony, _ := repo.ListByCategory(ctx, models.CategoryCeremony)
	if len(ceremony) != 2 {
		t.Errorf("ceremony photos = %d", len(ceremony))
	}
	if n, _ := repo.Count(ctx); n != 3 {
		t.Errorf("Count = %d", n)
	}
}
