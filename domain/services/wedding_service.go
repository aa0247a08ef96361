package services

import (
	"context"
	"errors"
	"time"

	"wedding-invitation/domain/countdown"
	"wedding-invitation/domain/dto"
)

var ErrGiftNotFound = errors.New("gift account not found")

// WeddingService serves the static invitation details and the countdown.
type WeddingService interface {
	Details(ctx context.Context) *dto.WeddingDetailsResponse
	Countdown(now time.Time) countdown.Breakdown
	GiftQRCode(ctx context.Context, giftID string, size int) ([]byte, error)

	// StartCountdownBroadcast pushes a tick every second to the countdown
	// room until the target passes.
	StartCountdownBroadcast() error
}
