package serviceimpl

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/models"
	"wedding-invitation/domain/repositories"
	"wedding-invitation/domain/services"
	"wedding-invitation/infrastructure/memory"
	"wedding-invitation/infrastructure/worker"
)

type fakeCelebrator struct {
	mu       sync.Mutex
	requests []worker.CelebrationRequest
}

func (f *fakeCelebrator) Celebrate(req worker.CelebrationRequest) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	return true
}

type fakeNotifier struct {
	messages []string
}

func (f *fakeNotifier) Broadcast(messageType string, data interface{}) int {
	f.messages = append(f.messages, messageType)
	return 1
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newTestRSVPService(kv repositories.KVStore, c Celebrator, n Notifier) *RSVPServiceImpl {
	return newRSVPService(kv, c, n, fixedClock(time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)), ConfirmationDelay)
}

func TestSubmitAppendsRecordAndPrependsWish(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	notifier := &fakeNotifier{}
	svc := newTestRSVPService(kv, &fakeCelebrator{}, notifier)

	before, _ := svc.Wishes(ctx)

	record, err := svc.Submit(ctx, "guest-1", &dto.RSVPRequest{
		Name:    "Lan Anh",
		Guests:  2,
		Phone:   "0912 345 678",
		Message: "Congrats!",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if record.Phone != "0912345678" {
		t.Errorf("phone = %q", record.Phone)
	}

	records, _ := svc.ListRSVPs(ctx)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if r := records[0]; r.Name != "Lan Anh" || r.Guests != 2 || r.Phone != "0912345678" {
		t.Errorf("stored record = %+v", r)
	}

	wishes, _ := svc.Wishes(ctx)
	if wishes[0] != "Congrats!" {
		t.Errorf("first wish = %q", wishes[0])
	}
	if len(wishes) != len(before)+1 {
		t.Errorf("wishes grew from %d to %d", len(before), len(wishes))
	}
	if len(notifier.messages) != 1 || notifier.messages[0] != MessageWish {
		t.Errorf("notifications = %v", notifier.messages)
	}

	raw, err := kv.Get(ctx, models.KeyWishes)
	if err != nil {
		t.Fatalf("wishes not persisted: %v", err)
	}
	var persisted []string
	json.Unmarshal([]byte(raw), &persisted)
	if len(persisted) == 0 || persisted[0] != "Congrats!" {
		t.Errorf("persisted wishes = %v", persisted)
	}
}

func TestSubmitStripsNonDigitsFromPhone(t *testing.T) {
	svc := newTestRSVPService(memory.NewKVStore(), nil, nil)
	record, err := svc.Submit(context.Background(), "g", &dto.RSVPRequest{Name: "Minh", Guests: 1, Phone: "09a12"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if record.Phone != "0912" {
		t.Errorf("phone = %q, want 0912", record.Phone)
	}
}

func TestBlankMessageLeavesWishesAlone(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	svc := newTestRSVPService(kv, nil, nil)

	if _, err := svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "Minh", Guests: 1, Phone: "1", Message: "   "}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := kv.Get(ctx, models.KeyWishes); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("wishes written for a blank message: %v", err)
	}
}

func TestMessageKeptAsTyped(t *testing.T) {
	ctx := context.Background()
	svc := newTestRSVPService(memory.NewKVStore(), nil, nil)
	svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "Minh", Guests: 1, Phone: "1", Message: "  Chúc mừng  "})

	wishes, _ := svc.Wishes(ctx)
	if wishes[0] != "  Chúc mừng  " {
		t.Errorf("first wish = %q", wishes[0])
	}
}

func TestCorruptStorageReadsAsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKVStore()
	kv.Set(ctx, models.KeyRSVPs, "{not json")
	kv.Set(ctx, models.KeyWishes, "[1, 2")
	svc := newTestRSVPService(kv, nil, nil)

	records, err := svc.ListRSVPs(ctx)
	if err != nil {
		t.Fatalf("ListRSVPs: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("corrupt list should load empty, got %d", len(records))
	}
	wishes, _ := svc.Wishes(ctx)
	if len(wishes) != len(models.SeedWishes) {
		t.Errorf("corrupt wishes should fall back to seed list, got %d", len(wishes))
	}

	if _, err := svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "Minh", Guests: 3, Phone: "1"}); err != nil {
		t.Fatalf("Submit over corrupt data: %v", err)
	}
	records, _ = svc.ListRSVPs(ctx)
	if len(records) != 1 {
		t.Errorf("got %d records after reseed, want 1", len(records))
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestRSVPService(memory.NewKVStore(), nil, nil)

	_, err := svc.Submit(context.Background(), "g", &dto.RSVPRequest{Name: "   ", Guests: 6, Phone: "abc"})
	if !errors.Is(err, services.ErrInvalidRSVP) {
		t.Fatalf("err = %v, want invalid rsvp", err)
	}
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err is %T", err)
	}
	for _, field := range []string{"name", "guests", "phone"} {
		if _, ok := verr.Fields[field]; !ok {
			t.Errorf("missing message for %s: %v", field, verr.Fields)
		}
	}

	if _, err := svc.Submit(context.Background(), "g", &dto.RSVPRequest{Name: "Minh", Guests: 0, Phone: "1"}); err == nil {
		t.Error("zero guests should be rejected")
	}
}

func TestIDsStayUniqueWhenClockRepeats(t *testing.T) {
	ctx := context.Background()
	svc := newTestRSVPService(memory.NewKVStore(), nil, nil)

	a, _ := svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "A", Guests: 1, Phone: "1"})
	b, _ := svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "B", Guests: 1, Phone: "2"})
	if b.ID != a.ID+1 {
		t.Errorf("ids %d then %d", a.ID, b.ID)
	}
	if a.ID != time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC).UnixMilli() {
		t.Errorf("id is not the submission time: %d", a.ID)
	}
}

func TestConfirmationWaitsForCelebrator(t *testing.T) {
	celebrator := &fakeCelebrator{}
	svc := newTestRSVPService(memory.NewKVStore(), celebrator, nil)

	if _, err := svc.Submit(context.Background(), "guest-7", &dto.RSVPRequest{Name: "A", Guests: 1, Phone: "1"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if svc.IsSubmitted("guest-7") || !svc.HasReplied("guest-7") {
		t.Fatal("reply should be pending until the delay passes")
	}
	if len(celebrator.requests) != 1 {
		t.Fatalf("celebrations requested: %d", len(celebrator.requests))
	}
	req := celebrator.requests[0]
	if req.GuestID != "guest-7" || req.Delay != ConfirmationDelay {
		t.Errorf("request = %+v", req)
	}

	req.OnConfirm()
	if !svc.IsSubmitted("guest-7") {
		t.Error("confirmation did not mark the guest submitted")
	}
	if svc.IsSubmitted("someone-else") {
		t.Error("submitted state leaked to another guest")
	}
}

func TestConcurrentSubmitsKeepEveryRecord(t *testing.T) {
	ctx := context.Background()
	svc := newRSVPService(memory.NewKVStore(), nil, nil, time.Now, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.Submit(ctx, "g", &dto.RSVPRequest{Name: "Guest", Guests: 1, Phone: "1", Message: "hi"})
		}()
	}
	wg.Wait()

	records, _ := svc.ListRSVPs(ctx)
	if len(records) != 20 {
		t.Errorf("got %d records, want 20", len(records))
	}
	seen := make(map[int64]bool)
	for _, r := range records {
		if seen[r.ID] {
			t.Errorf("duplicate id %d", r.ID)
		}
		seen[r.ID] = true
	}
}
