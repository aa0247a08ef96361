package memory

import (
	"context"
	"fmt"

	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
)

// PhotoRepository serves the photo list bound at start-up.
type PhotoRepository struct {
	photos []models.Photo
}

func NewPhotoRepository(photos []models.Photo) repositories.PhotoRepository {
	out := make([]models.Photo, len(photos))
	copy(out, photos)
	return &PhotoRepository{photos: out}
}

func (r *PhotoRepository) List(ctx context.Context) ([]models.Photo, error) {
	out := make([]models.Photo, len(r.photos))
	copy(out, r.photos)
	return out, nil
}

func (r *PhotoRepository) GetByID(ctx context.Context, id int) (*models.Photo, error) {
	for _, p := range r.photos {
		if p.ID == id {
			photo := p
			return &photo, nil
		}
	}
	return nil, fmt.Errorf("photo %d: %w", id, repositories.ErrNotFound)
}

func (r *PhotoRepository) ListByCategory(ctx context.Context, category models.Category) ([]models.Photo, error) {
	out := make([]models.Photo, 0, len(r.photos))
	for _, p := range r.photos {
		if category == models.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PhotoRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(r.photos)), nil
}
