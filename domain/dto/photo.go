package dto

// Public paths the photo tiers are served under.
const (
	ThumbnailPath = "/images/thumbnails/"
	LargePath     = "/images/large/"
)

type PhotoResponse struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	ThumbURL string `json:"thumb_url"`
	FullURL  string `json:"full_url"`
}
