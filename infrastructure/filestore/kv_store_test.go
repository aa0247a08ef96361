package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"wedding-invitation/domain/repositories"
	"wedding-invitation/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "filestore-logs")
	if err != nil {
		panic(err)
	}
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestKVStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "store.json")

	s, err := NewKVStore(path)
	if err != nil {
		t.Fatalf("NewKVStore: %v", err)
	}
	if _, err := s.Get(ctx, "wedding_rsvps"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Get on empty store = %v, want ErrNotFound", err)
	}
	if err := s.Set(ctx, "wedding_rsvps", `[{"id":1}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := NewKVStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, "wedding_rsvps")
	if err != nil || got != `[{"id":1}]` {
		t.Fatalf("Get after reopen = %q, %v", got, err)
	}

	if err := reopened.Delete(ctx, "wedding_rsvps"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := reopened.Get(ctx, "wedding_rsvps"); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Get after delete = %v", err)
	}
	if err := reopened.Ping(ctx); err != nil {
		t.Errorf("Ping: %v", err)
	}
}

func TestKVStoreRecoversFromCorruptFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")
	// a write cut off halfway
	if err := os.WriteFile(path, []byte(`{"wedding_rsvps": "[{\"id\":1`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := NewKVStore(path)
	if err != nil {
		t.Fatalf("NewKVStore on a corrupt file: %v", err)
	}
	if _, err := s.Get(ctx, "wedding_rsvps"); !errors.Is(err, repositories.ErrNotFound) {
		t.Fatalf("Get on recovered store = %v, want ErrNotFound", err)
	}

	if err := s.Set(ctx, "wedding_wishes", `["Congrats"]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("file after Set is not valid JSON: %v", err)
	}
	if len(doc) != 1 || doc["wedding_wishes"] != `["Congrats"]` {
		t.Errorf("file after Set = %v", doc)
	}

	matches, _ := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp-*"))
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}
