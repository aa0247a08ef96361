package serviceimpl

import (
	"context"
	"fmt"
	"time"

	"wedding-invitation/domain/assets"
	"wedding-invitation/domain/countdown"
	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/links"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/services"
	"wedding-invitation/infrastructure/websocket"
	"wedding-invitation/pkg/logger"
	"wedding-invitation/pkg/scheduler"
	"wedding-invitation/pkg/utils"
)

const (
	CountdownJobID   = "countdown"
	MessageCountdown = "countdown"

	minQRSize = 64
	maxQRSize = 1024
)

// RoomBroadcaster reaches every client in a websocket room.
type RoomBroadcaster interface {
	BroadcastToRoom(room string, messageType string, data interface{}) int
}

type WeddingServiceImpl struct {
	details     models.WeddingDetails
	target      time.Time
	response    *dto.WeddingDetailsResponse
	scheduler   scheduler.EventScheduler
	broadcaster RoomBroadcaster
	now         func() time.Time
}

func NewWeddingService(
	details models.WeddingDetails,
	manifest *assets.Manifest,
	eventScheduler scheduler.EventScheduler,
	broadcaster RoomBroadcaster,
) (services.WeddingService, error) {
	target, err := details.Target()
	if err != nil {
		return nil, fmt.Errorf("invalid wedding date: %w", err)
	}

	resolver := dto.DetailsResolver{
		Image: func(fragment string) string {
			if key := manifest.ResolveOr(fragment, assets.TierLarge, 0); key != "" {
				return dto.LargePath + key
			}
			return ""
		},
		Bio:    utils.MarkdownToHTML,
		MapURL: links.MapsSearchURL,
		QRImageURL: func(payload string) string {
			return links.QRImageURL(payload, links.DefaultQRSize)
		},
		QRLocalURL: func(giftID string) string {
			return "/api/v1/gifts/" + giftID + "/qr.png"
		},
	}

	return &WeddingServiceImpl{
		details:     details,
		target:      target,
		response:    dto.WeddingDetailsToResponse(details, target, resolver),
		scheduler:   eventScheduler,
		broadcaster: broadcaster,
		now:         time.Now,
	}, nil
}

func (s *WeddingServiceImpl) Details(ctx context.Context) *dto.WeddingDetailsResponse {
	return s.response
}

func (s *WeddingServiceImpl) Countdown(now time.Time) countdown.Breakdown {
	return countdown.Compute(now, s.target)
}

func (s *WeddingServiceImpl) GiftQRCode(ctx context.Context, giftID string, size int) ([]byte, error) {
	gift, ok := s.details.Gift(giftID)
	if !ok {
		return nil, services.ErrGiftNotFound
	}
	if size < minQRSize {
		size = links.DefaultQRSize
	}
	if size > maxQRSize {
		size = maxQRSize
	}
	return links.QRPNG(gift.QRData, size)
}

func (s *WeddingServiceImpl) StartCountdownBroadcast() error {
	if s.Countdown(s.now()).Done {
		logger.Scheduler("countdown_skipped", "Wedding date has passed, countdown not scheduled", nil)
		return nil
	}
	return s.scheduler.AddIntervalJob(CountdownJobID, time.Second, s.broadcastTick)
}

func (s *WeddingServiceImpl) broadcastTick() {
	b := s.Countdown(s.now())
	s.broadcaster.BroadcastToRoom(websocket.RoomCountdown, MessageCountdown, dto.CountdownToResponse(b, s.target))
	if !b.Done {
		return
	}

	// RemoveJob must not run on the job's own goroutine
	go func() {
		if err := s.scheduler.RemoveJob(CountdownJobID); err != nil {
			logger.SchedulerWarn("countdown_remove_failed", "Failed to remove countdown job", map[string]interface{}{"error": err.Error()})
			return
		}
		logger.Scheduler("countdown_finished", "Countdown reached the wedding date", nil)
	}()
}
