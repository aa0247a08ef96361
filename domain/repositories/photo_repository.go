package repositories

import (
	"context"

	"wedding-invitation/domain/models"
)

type PhotoRepository interface {
	List(ctx context.Context) ([]models.Photo, error)
	GetByID(ctx context.Context, id int) (*models.Photo, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.Photo, error)
	Count(ctx context.Context) (int64, error)
}
