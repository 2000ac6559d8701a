//go:build integration || !unit

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	server "betu_homestay/internal/adapters/http_server"
	redisad "betu_homestay/internal/adapters/redis"
	"betu_homestay/internal/app"
	"betu_homestay/internal/clock"
	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/session"
)

// ---------- helpers ----------
func pint(i int) *int { return &i }

type stack struct {
	ts  *httptest.Server
	mr  *miniredis.Miniredis
	clk *clock.Fake
}

func newStack(t *testing.T) *stack {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = cache.Close() })

	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	site := content.Site()
	store := session.NewStore(clk, time.Minute, site, content.Rooms, session.DefaultConfig())
	t.Cleanup(store.Shutdown)

	srv := server.New()
	srv.MountHandlers(&server.Handlers{
		Q:        app.NewQueryService(content.Static{}, cache, 5*time.Minute, site),
		Sessions: store,
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return &stack{ts: ts, mr: mr, clk: clk}
}

func (s *stack) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	res, err := http.Post(s.ts.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { _ = res.Body.Close() })
	return res
}

func (s *stack) event(t *testing.T, id string, ev session.Event) session.View {
	t.Helper()
	res := s.post(t, "/v1/sessions/"+id+"/events", ev)
	if res.StatusCode != http.StatusOK {
		t.Fatalf("event %s: status %d", ev.Type, res.StatusCode)
	}
	var v session.View
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return v
}

func (s *stack) view(t *testing.T, id string) session.View {
	t.Helper()
	res, err := http.Get(s.ts.URL + "/v1/sessions/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	var v session.View
	if err := json.NewDecoder(res.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	return v
}

// ---------- the tests ----------
func TestHTTP_EndToEnd_RoomsCachedInRedis(t *testing.T) {
	s := newStack(t)

	res, err := http.Get(s.ts.URL + "/v1/rooms")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status %d", res.StatusCode)
	}
	var page domain.RoomsPage
	if err := json.NewDecoder(res.Body).Decode(&page); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(page.Items) != 2 {
		t.Fatalf("want 2 rooms, got %d", len(page.Items))
	}
	if !s.mr.Exists(redisad.KeyPrefix + "rooms:list") {
		t.Fatal("rooms list was not cached")
	}

	res2, err := http.Get(fmt.Sprintf("%s/v1/rooms/%d", s.ts.URL, page.Items[1].ID))
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	var room domain.Room
	if err := json.NewDecoder(res2.Body).Decode(&room); err != nil {
		t.Fatal(err)
	}
	if room.Name != page.Items[1].Name || len(room.Gallery) == 0 {
		t.Fatalf("unexpected room: %+v", room)
	}
}

func TestHTTP_EndToEnd_ViewSession(t *testing.T) {
	s := newStack(t)

	res := s.post(t, "/v1/sessions", nil)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create: %d", res.StatusCode)
	}
	var created struct {
		ID   string       `json:"id"`
		View session.View `json:"view"`
	}
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	id := created.ID
	if got := created.View.Counters[0]; got != "0+" {
		t.Fatalf("counter before visible: %q", got)
	}

	// autoplay advances on the session clock
	s.clk.Advance(5 * time.Second)
	if v := s.view(t, id); v.Slide.Index != 1 || !v.Slide.Autoplay {
		t.Fatalf("after one interval: %+v", v.Slide)
	}

	// counters run once the section is visible
	s.event(t, id, session.Event{Type: session.CounterVisible, Index: pint(1)})
	s.clk.Advance(3 * time.Second)
	if v := s.view(t, id); v.Counters[1] != "5.0/5" {
		t.Fatalf("counter final: %q", v.Counters[1])
	}

	// navigation lands below the fixed header
	s.event(t, id, session.Event{Type: session.Layout, Anchors: map[string]int{content.AnchorRooms: 1500}})
	s.event(t, id, session.Event{Type: session.Navigate, Section: "rooms", Anchor: content.AnchorRooms})
	s.clk.Advance(150 * time.Millisecond)
	v := s.view(t, id)
	if v.Scroll == nil || v.Scroll.Y != 1420 {
		t.Fatalf("scroll: %+v", v.Scroll)
	}

	// lightbox over room detail keeps the page locked until the room closes
	room := content.Rooms[0]
	s.event(t, id, session.Event{Type: session.RoomOpen, RoomID: room.ID})
	v = s.event(t, id, session.Event{Type: session.ImageOpen, Src: room.Gallery[0]})
	if v.Overlay.Image != room.Gallery[0] || !v.Overlay.ScrollLocked {
		t.Fatalf("lightbox: %+v", v.Overlay)
	}
	v = s.event(t, id, session.Event{Type: session.OverlayClose, Layer: "lightbox"})
	if v.Overlay.RoomID != room.ID || !v.Overlay.ScrollLocked {
		t.Fatalf("room must stay open and locked: %+v", v.Overlay)
	}
	v = s.event(t, id, session.Event{Type: session.OverlayBackground, Layer: "room"})
	if v.Overlay.RoomID != 0 || v.Overlay.ScrollLocked {
		t.Fatalf("closing the room unlocks: %+v", v.Overlay)
	}

	if res := s.post(t, "/v1/sessions/"+id+"/close", nil); res.StatusCode != http.StatusNoContent {
		t.Fatalf("close: %d", res.StatusCode)
	}
	if s.clk.Pending() != 0 {
		t.Fatalf("%d timers still armed after close", s.clk.Pending())
	}
}
