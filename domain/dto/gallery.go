package dto

type CategoryResponse struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// GalleryStateResponse is one guest's gallery view, ready to render.
type GalleryStateResponse struct {
	ActiveCategory string             `json:"active_category"`
	Categories     []CategoryResponse `json:"categories"`
	Expanded       bool               `json:"expanded"`
	CanExpand      bool               `json:"can_expand"`
	Total          int                `json:"total"`
	Visible        []PhotoResponse    `json:"visible"`
	Selected       *PhotoResponse     `json:"selected,omitempty"`
	SelectedIndex  int                `json:"selected_index"`
	ScrollLocked   bool               `json:"scroll_locked"`
}

type CategoryRequest struct {
	Category string `json:"category" form:"category"`
}

type OpenPhotoRequest struct {
	PhotoID int `json:"photo_id" form:"photo_id"`
}

type NavigateRequest struct {
	Direction string `json:"direction" form:"direction"`
}

type SectionRequest struct {
	Section string `json:"section"`
}

type ScrollRequest struct {
	OffsetY float64 `json:"offset_y"`
}
