package models

import "time"

// Store keys shared with the browser-era data layout.
const (
	KeyRSVPs  = "wedding_rsvps"
	KeyWishes = "wedding_wishes"
)

const (
	MinGuests = 1
	MaxGuests = 5
)

// RSVPRecord is one stored reply. Records are only ever appended.
type RSVPRecord struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Guests      int       `json:"guests"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// SeedWishes is shown until the first guest leaves a message.
var SeedWishes = []string{
	"Happily Ever After", "Happy Wedding", "Forever Together", "Forever Love",
	"Blessed Union", "Happy Marriage", "Perfect Happiness", "Best Wishes",
	"Together Forever", "True Love", "Growing Old Together", "Sweet Couple",
	"Wedded Bliss", "Just Married", "Overflowing Love", "Endless Love",
}

// DefaultWishes returns a fresh copy of SeedWishes.
func DefaultWishes() []string {
	out := make([]string, len(SeedWishes))
	copy(out, SeedWishes)
	return out
}
