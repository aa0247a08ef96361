package services

import (
	"context"
	"errors"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
)

var ErrInvalidRSVP = errors.New("invalid rsvp")

// ValidationError carries per-field messages for a rejected submission.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid rsvp form"
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRSVP
}

// RSVPService stores guest replies and the wishes shown on the page.
type RSVPService interface {
	// Submit persists the reply and, after a short delay, flips the guest's
	// form to its confirmation state and starts the celebration.
	Submit(ctx context.Context, guestID string, req *dto.RSVPRequest) (*models.RSVPRecord, error)

	ListRSVPs(ctx context.Context) ([]models.RSVPRecord, error)
	Wishes(ctx context.Context) ([]string, error)

	// IsSubmitted reports whether the guest has seen the confirmation.
	IsSubmitted(guestID string) bool
	// HasReplied also covers a reply still waiting for its confirmation.
	HasReplied(guestID string) bool
}
