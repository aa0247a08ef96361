package config

import (
	"os"
	"path/filepath"
	"testing"

	"wedding-invitation/domain/models"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("RATE_LIMIT_RSVP_MAX", "not-a-number")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.Driver != DriverSQLite {
		t.Errorf("driver = %q, want sqlite", cfg.Storage.Driver)
	}
	if cfg.RateLimit.RSVPMaxRequests != 5 {
		t.Errorf("bad int should fall back to default, got %d", cfg.RateLimit.RSVPMaxRequests)
	}
	if cfg.Jobs.GalleryPruneCron != "*/10 * * * *" {
		t.Errorf("prune cron = %q", cfg.Jobs.GalleryPruneCron)
	}
}

func TestLoadWeddingWithoutFile(t *testing.T) {
	d, err := LoadWedding(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadWedding: %v", err)
	}
	if d.Bride.Name != "Thu Thủy" || d.Groom.Name != "Đức Linh" {
		t.Errorf("unexpected names %q / %q", d.Bride.Name, d.Groom.Name)
	}
	if len(d.Photos) != 15 || len(d.Timeline) != 5 || len(d.Gifts) != 2 {
		t.Errorf("defaults incomplete: %d photos, %d events, %d gifts", len(d.Photos), len(d.Timeline), len(d.Gifts))
	}
	target, err := d.Target()
	if err != nil {
		t.Fatalf("Target: %v", err)
	}
	if target.Hour() != 9 || target.Day() != 12 {
		t.Errorf("target = %v", target)
	}
}

func TestLoadWeddingOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wedding.yaml")
	yaml := `
venue: Garden Hall
bride:
  name: Mai
timeline:
  - time: "05:00 PM"
    title: Dinner
    description: Dinner together.
photos:
  - id: 1
    category: couple
    title: Only One
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("WEDDING_LOCATION", "Hà Nội")

	d, err := LoadWedding(path)
	if err != nil {
		t.Fatalf("LoadWedding: %v", err)
	}
	if d.Venue != "Garden Hall" || d.Bride.Name != "Mai" {
		t.Errorf("file overrides not applied: venue=%q bride=%q", d.Venue, d.Bride.Name)
	}
	if d.Bride.Father != "Nguyễn Văn Phong" {
		t.Errorf("unset bride fields should keep defaults, father=%q", d.Bride.Father)
	}
	if d.Location != "Hà Nội" {
		t.Errorf("env override not applied: %q", d.Location)
	}
	if len(d.Timeline) != 1 || d.Timeline[0].Title != "Dinner" {
		t.Errorf("timeline = %+v", d.Timeline)
	}
	if len(d.Photos) != 1 || d.Photos[0].Category != models.CategoryCouple {
		t.Errorf("photos = %+v", d.Photos)
	}
}

func TestValidateWedding(t *testing.T) {
	d := DefaultWedding()
	d.Photos = append(d.Photos, models.PhotoSpec{ID: 1, Category: models.CategoryCouple})
	if err := ValidateWedding(d); err == nil {
		t.Error("duplicate photo id should be rejected")
	}

	d = DefaultWedding()
	d.Date = "next spring"
	if err := ValidateWedding(d); err == nil {
		t.Error("unparseable date should be rejected")
	}
}
