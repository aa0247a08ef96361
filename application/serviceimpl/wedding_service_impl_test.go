package serviceimpl

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"wedding-invitation/domain/assets"
	"wedding-invitation/domain/dto"
	"wedding-invitation/domain/services"
	"wedding-invitation/pkg/config"
	"wedding-invitation/pkg/scheduler"
)

type fakeScheduler struct {
	mu      sync.Mutex
	tasks   map[string]func()
	removed chan string
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{tasks: make(map[string]func()), removed: make(chan string, 1)}
}

func (f *fakeScheduler) Start()          {}
func (f *fakeScheduler) Stop()           {}
func (f *fakeScheduler) IsRunning() bool { return true }
func (f *fakeScheduler) AddJob(id, cronExpr string, task func()) error {
	return f.AddIntervalJob(id, time.Minute, task)
}
func (f *fakeScheduler) AddIntervalJob(id string, every time.Duration, task func()) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[id] = task
	return nil
}
func (f *fakeScheduler) RemoveJob(id string) error {
	f.mu.Lock()
	delete(f.tasks, id)
	f.mu.Unlock()
	f.removed <- id
	return nil
}
func (f *fakeScheduler) GetJob(id string) (*scheduler.JobInfo, bool) { return nil, false }
func (f *fakeScheduler) ListJobs() map[string]*scheduler.JobInfo     { return nil }

type roomRecorder struct {
	mu   sync.Mutex
	last *dto.CountdownResponse
	room string
}

func (r *roomRecorder) BroadcastToRoom(room string, messageType string, data interface{}) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.room = room
	r.last, _ = data.(*dto.CountdownResponse)
	return 1
}

func newTestWeddingService(t *testing.T, sched scheduler.EventScheduler, rec RoomBroadcaster) *WeddingServiceImpl {
	t.Helper()
	manifest := assets.NewManifest(nil, []string{"HERO0164.JPG", "HERO0332.JPG", "HERO9942.JPG"})
	svc, err := NewWeddingService(config.DefaultWedding(), manifest, sched, rec)
	if err != nil {
		t.Fatalf("NewWeddingService: %v", err)
	}
	return svc.(*WeddingServiceImpl)
}

func TestWeddingDetails(t *testing.T) {
	svc := newTestWeddingService(t, newFakeScheduler(), &roomRecorder{})
	d := svc.Details(context.Background())

	if d.Bride.Name != "Thu Thủy" || d.Groom.Name != "Đức Linh" {
		t.Errorf("names = %s / %s", d.Bride.Name, d.Groom.Name)
	}
	if d.Bride.ImageURL != "/images/large/HERO0164.JPG" || d.HeroImageURL != "/images/large/HERO9942.JPG" {
		t.Errorf("images = %s, %s", d.Bride.ImageURL, d.HeroImageURL)
	}
	if !strings.HasPrefix(d.RSVPImageURL, "/images/large/") {
		t.Errorf("unmatched image should fall back to a positional asset, got %q", d.RSVPImageURL)
	}
	if !strings.HasPrefix(d.Groom.MapURL, "https://www.google.com/maps/search/?api=1&query=") {
		t.Errorf("map url = %s", d.Groom.MapURL)
	}
	if !strings.Contains(d.Bride.BioHTML, "<p>") {
		t.Errorf("bio not rendered: %q", d.Bride.BioHTML)
	}
	if d.DisplayDate != "Monday, January 12, 2026" {
		t.Errorf("display date = %s", d.DisplayDate)
	}
	if len(d.Gifts) != 2 || d.Gifts[0].QRLocalURL != "/api/v1/gifts/bride/qr.png" {
		t.Errorf("gifts = %+v", d.Gifts)
	}
}

func TestGiftQRCode(t *testing.T) {
	svc := newTestWeddingService(t, newFakeScheduler(), &roomRecorder{})

	if _, err := svc.GiftQRCode(context.Background(), "uncle", 0); !errors.Is(err, services.ErrGiftNotFound) {
		t.Errorf("err = %v", err)
	}
	png, err := svc.GiftQRCode(context.Background(), "groom", 5000)
	if err != nil {
		t.Fatalf("GiftQRCode: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Error("not a png")
	}
}

func TestCountdownBroadcastStopsAtTarget(t *testing.T) {
	sched := newFakeScheduler()
	rec := &roomRecorder{}
	svc := newTestWeddingService(t, sched, rec)

	now := svc.target.Add(-90 * time.Second)
	svc.now = func() time.Time { return now }

	if err := svc.StartCountdownBroadcast(); err != nil {
		t.Fatalf("StartCountdownBroadcast: %v", err)
	}
	task := sched.tasks[CountdownJobID]
	if task == nil {
		t.Fatal("countdown job not scheduled")
	}

	task()
	if rec.room != "countdown" || rec.last == nil || rec.last.Minutes != 1 || rec.last.Seconds != 30 || rec.last.Done {
		t.Fatalf("tick = %+v", rec.last)
	}

	now = svc.target.Add(time.Second)
	task()
	if !rec.last.Done || rec.last.Message != "The day has come!" {
		t.Errorf("tick after target = %+v", rec.last)
	}
	select {
	case id := <-sched.removed:
		if id != CountdownJobID {
			t.Errorf("removed %s", id)
		}
	case <-time.After(time.Second):
		t.Fatal("countdown job was not removed")
	}
}

func TestCountdownNotScheduledAfterTarget(t *testing.T) {
	sched := newFakeScheduler()
	svc := newTestWeddingService(t, sched, &roomRecorder{})
	svc.now = func() time.Time { return svc.target.Add(time.Hour) }

	if err := svc.StartCountdownBroadcast(); err != nil {
		t.Fatalf("StartCountdownBroadcast: %v", err)
	}
	if len(sched.tasks) != 0 {
		t.Error("job scheduled for a past date")
	}
}
