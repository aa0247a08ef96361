package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	"wedding-invitation/infrastructure/worker"
	"wedding-invitation/pkg/logger"
	"wedding-invitation/pkg/utils"
)

// ConfirmationDelay is how long a guest waits between sending the form and
// seeing the thank-you state.
const ConfirmationDelay = time.Second

// MessageWish is pushed to every open page when a guest leaves a message.
const MessageWish = "wish"

// Celebrator runs the confirmation and confetti for a guest.
type Celebrator interface {
	Celebrate(req worker.CelebrationRequest) bool
}

// Notifier reaches every connected page.
type Notifier interface {
	Broadcast(messageType string, data interface{}) int
}

type RSVPServiceImpl struct {
	kv         repositories.KVStore
	celebrator Celebrator
	notifier   Notifier
	now        func() time.Time
	delay      time.Duration

	// serialises the read-modify-write of both lists
	mu     sync.Mutex
	lastID int64

	guestsMu  sync.RWMutex
	pending   map[string]bool
	submitted map[string]bool
}

func NewRSVPService(kv repositories.KVStore, celebrator Celebrator, notifier Notifier) services.RSVPService {
	return newRSVPService(kv, celebrator, notifier, time.Now, ConfirmationDelay)
}

func newRSVPService(kv repositories.KVStore, celebrator Celebrator, notifier Notifier, now func() time.Time, delay time.Duration) *RSVPServiceImpl {
	return &RSVPServiceImpl{
		kv:         kv,
		celebrator: celebrator,
		notifier:   notifier,
		now:        now,
		delay:      delay,
		pending:    make(map[string]bool),
		submitted:  make(map[string]bool),
	}
}

// SanitizePhone keeps only the ASCII digits of s.
func SanitizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func (s *RSVPServiceImpl) Submit(ctx context.Context, guestID string, req *dto.RSVPRequest) (*models.RSVPRecord, error) {
	req.Phone = SanitizePhone(req.Phone)

	fields := utils.ValidateStruct(req)
	if _, ok := fields["name"]; !ok && strings.TrimSpace(req.Name) == "" {
		if fields == nil {
			fields = make(map[string]string)
		}
		fields["name"] = "is required"
	}
	if len(fields) > 0 {
		return nil, &services.ValidationError{Fields: fields}
	}

	record, wishes, err := s.store(ctx, req)
	if err != nil {
		logger.RSVPError("submit_failed", "Failed to store RSVP", err, map[string]interface{}{"guest_id": guestID})
		return nil, err
	}

	logger.RSVP("submitted", "RSVP stored", map[string]interface{}{
		"guest_id":    guestID,
		"rsvp_id":     record.ID,
		"guests":      record.Guests,
		"has_message": wishes != nil,
	})

	if wishes != nil && s.notifier != nil {
		s.notifier.Broadcast(MessageWish, dto.WishesResponse{Wishes: wishes, Total: len(wishes)})
	}

	s.scheduleConfirmation(guestID)
	return record, nil
}

// store appends the record and, for a non-blank message, prepends the wish.
// The returned wishes are nil when the list was not touched.
func (s *RSVPServiceImpl) store(ctx context.Context, req *dto.RSVPRequest) (*models.RSVPRecord, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadRSVPs(ctx)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	record := models.RSVPRecord{
		ID:          s.nextID(now, records),
		Name:        req.Name,
		Guests:      req.Guests,
		Phone:       req.Phone,
		Message:     req.Message,
		SubmittedAt: now.UTC(),
	}
	records = append(records, record)
	if err := s.save(ctx, models.KeyRSVPs, records); err != nil {
		return nil, nil, err
	}

	if strings.TrimSpace(req.Message) == "" {
		return &record, nil, nil
	}

	wishes, err := s.loadWishes(ctx)
	if err != nil {
		return nil, nil, err
	}
	wishes = append([]string{req.Message}, wishes...)
	if err := s.save(ctx, models.KeyWishes, wishes); err != nil {
		return nil, nil, err
	}
	return &record, wishes, nil
}

// nextID is the submission time in milliseconds, bumped past anything already
// issued or stored.
func (s *RSVPServiceImpl) nextID(now time.Time, existing []models.RSVPRecord) int64 {
	id := now.UnixMilli()
	floor := s.lastID
	for _, r := range existing {
		if r.ID > floor {
			floor = r.ID
		}
	}
	if id <= floor {
		id = floor + 1
	}
	s.lastID = id
	return id
}

func (s *RSVPServiceImpl) scheduleConfirmation(guestID string) {
	s.guestsMu.Lock()
	s.pending[guestID] = true
	s.guestsMu.Unlock()

	confirm := func() {
		s.guestsMu.Lock()
		delete(s.pending, guestID)
		s.submitted[guestID] = true
		s.guestsMu.Unlock()
	}

	if s.celebrator == nil || !s.celebrator.Celebrate(worker.CelebrationRequest{
		GuestID:   guestID,
		Delay:     s.delay,
		OnConfirm: confirm,
	}) {
		confirm()
	}
}

func (s *RSVPServiceImpl) ListRSVPs(ctx context.Context) ([]models.RSVPRecord, error) {
	return s.loadRSVPs(ctx)
}

func (s *RSVPServiceImpl) Wishes(ctx context.Context) ([]string, error) {
	return s.loadWishes(ctx)
}

func (s *RSVPServiceImpl) IsSubmitted(guestID string) bool {
	s.guestsMu.RLock()
	defer s.guestsMu.RUnlock()
	return s.submitted[guestID]
}

func (s *RSVPServiceImpl) HasReplied(guestID string) bool {
	s.guestsMu.RLock()
	defer s.guestsMu.RUnlock()
	return s.submitted[guestID] || s.pending[guestID]
}

// loadRSVPs treats a missing or unreadable document as an empty list.
func (s *RSVPServiceImpl) loadRSVPs(ctx context.Context) ([]models.RSVPRecord, error) {
	raw, err := s.kv.Get(ctx, models.KeyRSVPs)
	if errors.Is(err, repositories.ErrNotFound) {
		return []models.RSVPRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read rsvps: %w", err)
	}

	var records []models.RSVPRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		logger.StorageWarn("rsvps_corrupt", "Stored RSVPs unreadable, starting empty", err, map[string]interface{}{"key": models.KeyRSVPs})
		return []models.RSVPRecord{}, nil
	}
	if records == nil {
		records = []models.RSVPRecord{}
	}
	return records, nil
}

// loadWishes falls back to the seed list when nothing usable is stored.
func (s *RSVPServiceImpl) loadWishes(ctx context.Context) ([]string, error) {
	raw, err := s.kv.Get(ctx, models.KeyWishes)
	if errors.Is(err, repositories.ErrNotFound) {
		return models.DefaultWishes(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wishes: %w", err)
	}

	var wishes []string
	if err := json.Unmarshal([]byte(raw), &wishes); err != nil || wishes == nil {
		logger.StorageWarn("wishes_corrupt", "Stored wishes unreadable, using seed list", err, map[string]interface{}{"key": models.KeyWishes})
		return models.DefaultWishes(), nil
	}
	return wishes, nil
}

func (s *RSVPServiceImpl) save(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	logger.Storage("written", "Document written", map[string]interface{}{"key": key, "bytes": len(data)})
	return nil
}
