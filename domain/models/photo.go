package models

import "strings"

// Category groups gallery photos. CategoryAll is only valid as a filter.
type Category string

const (
	CategoryAll       Category = "all"
	CategoryCeremony  Category = "ceremony"
	CategoryCouple    Category = "couple"
	CategoryReception Category = "reception"
	CategoryDetails   Category = "details"
)

// FilterCategories is the order the gallery shows its filter buttons in.
var FilterCategories = []Category{
	CategoryAll,
	CategoryCeremony,
	CategoryCouple,
	CategoryReception,
	CategoryDetails,
}

// Label is the human readable button text.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// IsPhotoCategory reports whether a photo may carry this category.
func (c Category) IsPhotoCategory() bool {
	switch c {
	case CategoryCeremony, CategoryCouple, CategoryReception, CategoryDetails:
		return true
	}
	return false
}

// IsFilter reports whether c is a valid gallery filter.
func (c Category) IsFilter() bool {
	return c == CategoryAll || c.IsPhotoCategory()
}

type Photo struct {
	ID       int      `json:"id"`
	ThumbKey string   `json:"thumb"`
	FullKey  string   `json:"full"`
	Category Category `json:"category"`
	Title    string   `json:"title"`
}
