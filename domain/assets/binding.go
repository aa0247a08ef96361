package assets

import "wedding-invitation/domain/models"

// BindPhotos turns configured photo specs into gallery photos. A spec with a
// fragment uses the matching keys; otherwise photo n takes the n-th key of
// each tier, wrapping when there are fewer images than photos.
func BindPhotos(specs []models.PhotoSpec, m *Manifest) []models.Photo {
	photos := make([]models.Photo, 0, len(specs))
	for _, s := range specs {
		photos = append(photos, models.Photo{
			ID:       s.ID,
			ThumbKey: m.ResolveOr(s.Fragment, TierThumb, s.ID-1),
			FullKey:  m.ResolveOr(s.Fragment, TierLarge, s.ID-1),
			Category: s.Category,
			Title:    s.Title,
		})
	}
	return photos
}
