// Package gallery holds the photo gallery state machine: category filter,
// the capped grid window and the lightbox with circular navigation.
package gallery

import (
	"errors"
	"strings"

	"wedding-invitation/domain/models"
)

// VisibleCap is how many photos the grid shows before it is expanded.
const VisibleCap = 8

var (
	ErrUnknownCategory  = errors.New("unknown gallery category")
	ErrUnknownDirection = errors.New("unknown navigation direction")
)

// Direction moves the lightbox through the filtered set.
type Direction int

const (
	Prev Direction = -1
	Next Direction = 1
)

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}

// ParseCategory accepts a filter name in any case. Empty means all.
func ParseCategory(s string) (models.Category, error) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if c == "" {
		return models.CategoryAll, nil
	}
	if !c.IsFilter() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// ParseDirection accepts "next" or "prev".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "next":
		return Next, nil
	case "prev", "previous":
		return Prev, nil
	}
	return 0, ErrUnknownDirection
}

// Filter returns the photos in category c, keeping their original order.
// CategoryAll returns every photo.
func Filter(photos []models.Photo, c models.Category) []models.Photo {
	if c == models.CategoryAll {
		out := make([]models.Photo, len(photos))
		copy(out, photos)
		return out
	}
	out := make([]models.Photo, 0, len(photos))
	for _, p := range photos {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out
}

func indexOf(photos []models.Photo, id int) int {
	for i, p := range photos {
		if p.ID == id {
			return i
		}
	}
	return -1
}
