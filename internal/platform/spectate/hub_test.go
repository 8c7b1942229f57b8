package spectate

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/fogscout/internal/config"
	"github.com/vovakirdan/fogscout/internal/world"
)

func testWorld(t *testing.T) *world.World {
	t.Helper()
	lvl := config.LevelConfig{
		ID:     "spectate",
		Bounds: config.RectConfig{W: 2000, H: 2000},
		Facing: config.Vec{Y: 1},
		Obstacles: []config.ObstacleConfig{
			{Name: "wall", Rect: &config.RectConfig{X: 0, Y: 500, W: 200, H: 20}},
		},
		Objects: []config.ObjectConfig{
			{Kind: config.KindLandmark, Name: "Front", Position: config.Vec{Y: 300}, Color: "#ff0000"},
			{Kind: config.KindLandmark, Name: "Behind", Position: config.Vec{Y: 700}},
		},
	}
	w := world.New(lvl, config.DefaultScoutConfig())
	w.Tick(world.Intent{}, 1.0/60)
	return w
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNewFrame(t *testing.T) {
	w := testWorld(t)
	f := NewFrame(w, 7)

	if f.Type != "frame" || f.Tick != 7 {
		t.Errorf("Type/Tick = %q/%d", f.Type, f.Tick)
	}
	if len(f.Boundary) != len(w.Boundary()) || len(f.Boundary) == 0 {
		t.Errorf("Boundary len = %d, expected %d", len(f.Boundary), len(w.Boundary()))
	}
	if len(f.Obstacles) != 1 || f.Obstacles[0].Name != "wall" || len(f.Obstacles[0].Vertices) != 4 {
		t.Errorf("Obstacles = %+v", f.Obstacles)
	}
	if f.Cone.AngleDeg < 89.999 || f.Cone.AngleDeg > 90.001 {
		t.Errorf("AngleDeg = %v, expected 90", f.Cone.AngleDeg)
	}

	if len(f.Objects) != 2 {
		t.Fatalf("Objects len = %d, expected 2", len(f.Objects))
	}
	front, behind := f.Objects[0], f.Objects[1]
	if front.State != "visible" || front.Tint != "#ff0000" || front.Alpha != 1 {
		t.Errorf("front = %+v", front)
	}
	if behind.State != "hidden" || behind.Tint != "" {
		t.Errorf("behind = %+v", behind)
	}
}

func TestFrameJSON(t *testing.T) {
	data, err := json.Marshal(NewFrame(testWorld(t), 1))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	s := string(data)
	for _, key := range []string{`"boundary":`, `"observer":`, `"angle_deg":`, `"state":"hidden"`} {
		if !strings.Contains(s, key) {
			t.Errorf("JSON missing %s", key)
		}
	}
	// hidden objects carry no tint
	if strings.Count(s, `"tint":`) != 1 {
		t.Errorf("expected exactly one tint in %s", s)
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(log.New(io.Discard))
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	waitFor(t, "spectator to register", func() bool { return hub.ClientCount() == 1 })

	w := testWorld(t)
	hub.Publish(NewFrame(w, 3))

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var got Frame
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	if got.Tick != 3 || len(got.Objects) != 2 {
		t.Errorf("got tick %d with %d objects", got.Tick, len(got.Objects))
	}

	conn.Close()
	waitFor(t, "spectator to leave", func() bool { return hub.ClientCount() == 0 })
}

func TestHubSendsLastFrameOnJoin(t *testing.T) {
	hub := NewHub(log.New(io.Discard))
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()

	hub.Publish(NewFrame(testWorld(t), 42))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	defer conn.Close()

	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var got Frame
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON() failed: %v", err)
	}
	if got.Tick != 42 {
		t.Errorf("Tick = %d, expected the last published frame", got.Tick)
	}
}

func TestHubDropsForSlowSpectators(t *testing.T) {
	hub := NewHub(log.New(io.Discard))
	c := &client{send: make(chan []byte, 1)}
	hub.clients[c] = struct{}{}

	f := NewFrame(testWorld(t), 1)
	hub.Publish(f)
	hub.Publish(f)
	hub.Publish(f)

	if hub.Dropped() != 2 {
		t.Errorf("Dropped() = %d, expected 2", hub.Dropped())
	}
	hub.Close()
	if hub.ClientCount() != 0 {
		t.Error("Close() should drop every spectator")
	}
}
