package dto

import "time"

// RSVPRequest is the reply form. Phone arrives already reduced to digits.
type RSVPRequest struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Guests  int    `json:"guests" form:"guests" validate:"min=1,max=5"`
	Phone   string `json:"phone" form:"phone" validate:"required,numeric"`
	Message string `json:"message" form:"message"`
}

type RSVPResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Guests      int       `json:"guests"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RSVPSubmitResponse tells the page when the confirmation will appear.
type RSVPSubmitResponse struct {
	RSVP                RSVPResponse `json:"rsvp"`
	ConfirmationDelayMs int64        `json:"confirmation_delay_ms"`
}

type RSVPListResponse struct {
	RSVPs       []RSVPResponse `json:"rsvps"`
	Total       int            `json:"total"`
	TotalGuests int            `json:"total_guests"`
}

type WishesResponse struct {
	Wishes []string `json:"wishes"`
	Total  int      `json:"total"`
}
