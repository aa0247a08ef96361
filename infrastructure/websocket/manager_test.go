package websocket

import (
	"encoding/json"
	"os"
	"sync"
	"testing"

	"wedding-invitation/pkg/logger"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "ws-logs")
	if err != nil {
		panic(err)
	}
	logger.Init(dir, false)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

type fakeConn struct {
	mu     sync.Mutex
	sent   []map[string]interface{}
	closed bool
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var m map[string]interface{}
	json.Unmarshal(b, &m)
	f.mu.Lock()
	f.sent = append(f.sent, m)
	f.mu.Unlock()
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func (f *fakeConn) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.sent))
	for i, m := range f.sent {
		out[i], _ = m["type"].(string)
	}
	return out
}

func TestBroadcastRouting(t *testing.T) {
	m := NewManager()
	a, b, c := &fakeConn{}, &fakeConn{}, &fakeConn{}
	m.RegisterClient(a, "guest-1", RoomCountdown)
	m.RegisterClient(b, "guest-1")
	m.RegisterClient(c, "guest-2", RoomCountdown)

	if n := m.BroadcastToUser("guest-1", "celebration", nil); n != 2 {
		t.Errorf("BroadcastToUser reached %d clients, want 2", n)
	}
	if n := m.BroadcastToRoom(RoomCountdown, "countdown", nil); n != 2 {
		t.Errorf("BroadcastToRoom reached %d clients, want 2", n)
	}
	if n := m.Broadcast("wishes", nil); n != 3 {
		t.Errorf("Broadcast reached %d clients, want 3", n)
	}
	if got := len(b.types()); got != 2 {
		t.Errorf("client b got %d messages, want 2", got)
	}

	m.UnregisterClient(a)
	if !a.closed {
		t.Error("unregister should close the connection")
	}
	if m.ClientCount() != 2 {
		t.Errorf("ClientCount = %d", m.ClientCount())
	}
	m.UnregisterClient(b)
	if m.HasGuest("guest-1") {
		t.Error("guest-1 has no connections left")
	}
}

func TestHandleWebSocketMessage(t *testing.T) {
	m := NewManager()
	conn := &fakeConn{}
	m.RegisterClient(conn, "guest-1")

	var got string
	m.On("section", func(client *Client, data json.RawMessage) {
		json.Unmarshal(data, &got)
		client.Send("active_section", got)
	})

	m.HandleWebSocketMessage(conn, []byte(`{"type":"ping"}`))
	m.HandleWebSocketMessage(conn, []byte(`{"type":"section","data":"gallery"}`))
	m.HandleWebSocketMessage(conn, []byte(`{"type":"join","data":"wishes"}`))
	m.HandleWebSocketMessage(conn, []byte(`{"type":"dance"}`))
	m.HandleWebSocketMessage(conn, []byte(`not json`))

	if got != "gallery" {
		t.Errorf("handler saw %q", got)
	}
	want := []string{"pong", "active_section", "error", "error"}
	types := conn.types()
	if len(types) != len(want) {
		t.Fatalf("sent %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("message %d = %s, want %s", i, types[i], want[i])
		}
	}
	if n := m.BroadcastToRoom(RoomWishes, "wishes", nil); n != 1 {
		t.Error("join should add the client to the room")
	}
}
