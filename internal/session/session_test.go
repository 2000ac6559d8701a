package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"betu_homestay/internal/adapters/observability"
	"betu_homestay/internal/clock"
	"betu_homestay/internal/content"
)

func intp(v int) *int { return &v }

func newSession(t *testing.T, cfg Config) (*Session, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Unix(1_700_000_000, 0))
	s := New("s1", clk, content.Site(), content.Rooms, cfg)
	t.Cleanup(s.Close)
	return s, clk
}

func TestSession_MountState(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())
	v := s.Snapshot()

	assert.Equal(t, "s1", v.ID)
	assert.Equal(t, 0, v.Slide.Index)
	assert.True(t, v.Slide.Autoplay)
	require.Len(t, v.Counters, len(content.Stats))
	assert.Equal(t, "0+", v.Counters[0])
	assert.Equal(t, "0.0/5", v.Counters[1])
	assert.False(t, v.Overlay.ScrollLocked)
	assert.Nil(t, v.Scroll)
	assert.Equal(t, 1, clk.Pending(), "only the rotator tick is armed")
}

func TestSession_SlideInteractionPausesThenResumes(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())

	require.NoError(t, s.Apply(Event{Type: SlidePrev}))
	v := s.Snapshot()
	assert.Equal(t, 3, v.Slide.Index)
	assert.False(t, v.Slide.Autoplay)

	clk.Advance(DefaultConfig().ResumeDelay - time.Millisecond)
	assert.False(t, s.Snapshot().Slide.Autoplay)
	clk.Advance(time.Millisecond)
	assert.True(t, s.Snapshot().Slide.Autoplay)

	require.NoError(t, s.Apply(Event{Type: SlideJump, Index: intp(2)}))
	assert.Equal(t, 2, s.Snapshot().Slide.Index)
}

func TestSession_CounterRunsOnceVisible(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())

	require.NoError(t, s.Apply(Event{Type: CounterVisible, Index: intp(1)}))
	require.NoError(t, s.Apply(Event{Type: CounterVisible, Index: intp(1)}))
	clk.Advance(2 * time.Second)

	v := s.Snapshot()
	assert.Equal(t, "5.0/5", v.Counters[1])
	assert.Equal(t, "0+", v.Counters[0], "other counters untouched")
}

func TestSession_RoomLightboxScrollLock(t *testing.T) {
	s, _ := newSession(t, DefaultConfig())
	room := content.Rooms[0]

	require.NoError(t, s.Apply(Event{Type: RoomOpen, RoomID: room.ID}))
	require.NoError(t, s.Apply(Event{Type: ImageOpen, Src: room.Gallery[len(room.Gallery)-1]}))
	assert.Equal(t, "lightbox", s.Snapshot().Overlay.Top)

	require.NoError(t, s.Apply(Event{Type: OverlayClose, Layer: "lightbox"}))
	v := s.Snapshot()
	assert.Equal(t, room.ID, v.Overlay.RoomID)
	assert.True(t, v.Overlay.ScrollLocked)

	require.NoError(t, s.Apply(Event{Type: OverlayContent, Layer: "room"}))
	assert.Equal(t, room.ID, s.Snapshot().Overlay.RoomID)

	require.NoError(t, s.Apply(Event{Type: OverlayBackground, Layer: "room"}))
	assert.False(t, s.Snapshot().Overlay.ScrollLocked)
}

func TestSession_NavigateUsesReportedLayout(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())

	require.NoError(t, s.Apply(Event{Type: Layout, Anchors: map[string]int{content.AnchorRooms: 1500}}))
	require.NoError(t, s.Apply(Event{Type: Navigate, Section: "rooms", Anchor: content.AnchorRooms}))
	assert.Nil(t, s.Snapshot().Scroll, "lookup waits for layout to settle")

	clk.Advance(150 * time.Millisecond)
	v := s.Snapshot()
	require.NotNil(t, v.Scroll)
	assert.Equal(t, ScrollCommand{Seq: 1, Y: 1420}, *v.Scroll)
	assert.Equal(t, "rooms", v.Section)

	require.NoError(t, s.Apply(Event{Type: Navigate, Section: "home"}))
	assert.Equal(t, ScrollCommand{Seq: 2, Y: 0}, *s.Snapshot().Scroll)
}

func TestSession_ZeroHeaderOffsetLandsFlush(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HeaderOffset = 0
	s, clk := newSession(t, cfg)

	require.NoError(t, s.Apply(Event{Type: Layout, Anchors: map[string]int{content.AnchorRooms: 1500}}))
	require.NoError(t, s.Apply(Event{Type: Navigate, Section: "rooms", Anchor: content.AnchorRooms}))
	clk.Advance(150 * time.Millisecond)
	require.NotNil(t, s.Snapshot().Scroll)
	assert.Equal(t, 1500, s.Snapshot().Scroll.Y)
}

func TestSession_NavigateMissingAnchorLeavesScroll(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())
	require.NoError(t, s.Apply(Event{Type: Navigate, Section: "about", Anchor: "about-section"}))
	clk.Advance(time.Second)
	assert.Nil(t, s.Snapshot().Scroll)
}

func TestSession_ScrollSampleDrivesNavbar(t *testing.T) {
	s, _ := newSession(t, DefaultConfig())
	require.NoError(t, s.Apply(Event{Type: Scroll, Y: intp(120)}))
	assert.True(t, s.Snapshot().NavbarSolid)
	require.NoError(t, s.Apply(Event{Type: Scroll, Y: intp(10)}))
	assert.False(t, s.Snapshot().NavbarSolid)
}

func TestSession_BadEvents(t *testing.T) {
	s, _ := newSession(t, DefaultConfig())
	for _, ev := range []Event{
		{Type: "hover"},
		{Type: SlideJump},
		{Type: SlideJump, Index: intp(4)},
		{Type: CounterVisible, Index: intp(9)},
		{Type: RoomOpen, RoomID: 99},
		{Type: ImageOpen, Src: "/deluxe/1.jpg"},
		{Type: OverlayClose, Layer: "sidebar"},
		{Type: Layout},
		{Type: Scroll},
	} {
		err := s.Apply(ev)
		assert.True(t, errors.Is(err, ErrBadEvent), "%s: %v", ev.Type, err)
	}
	v := s.Snapshot()
	assert.Equal(t, 0, v.Slide.Index)
	assert.True(t, v.Slide.Autoplay)
}

func eventSeries(t *testing.T) int {
	t.Helper()
	reg := prometheus.NewRegistry()
	reg.MustRegister(observability.SessionEvents)
	mfs, err := reg.Gather()
	require.NoError(t, err)
	n := 0
	for _, mf := range mfs {
		n += len(mf.GetMetric())
	}
	return n
}

func TestSession_UnknownTypesShareOneMetricSeries(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EventBurst = 1000
	s, _ := newSession(t, cfg)

	before := eventSeries(t)
	for i := 0; i < 200; i++ {
		err := s.Apply(Event{Type: fmt.Sprintf("junk-%d", i)})
		require.True(t, errors.Is(err, ErrBadEvent))
	}
	after := eventSeries(t)
	assert.LessOrEqual(t, after-before, 1)
	assert.Equal(t, "unknown", typeLabel("junk-7"))
	assert.Equal(t, SlideNext, typeLabel(SlideNext))
}

func TestSession_SnapshotNeverOlderThanVersion(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())
	require.NoError(t, s.Apply(Event{Type: CounterVisible, Index: intp(1)}))

	done := make(chan struct{})
	go func() {
		defer close(done)
		frame := DefaultConfig().CounterDuration / 120
		for i := 0; i < 130; i++ {
			clk.Advance(frame)
		}
		clk.Advance(time.Second)
	}()

	var seen []View
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
		}
		seen = append(seen, s.Snapshot())
	}

	final := s.Snapshot()
	require.Equal(t, "5.0/5", final.Counters[1])
	for _, v := range seen {
		if v.Version == final.Version {
			assert.Equal(t, "5.0/5", v.Counters[1], "snapshot at the final version shows the final frame")
		}
	}
}

func TestSession_RateLimited(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EventRate, cfg.EventBurst = 0, 2
	s, _ := newSession(t, cfg)

	require.NoError(t, s.Apply(Event{Type: SlideNext}))
	require.NoError(t, s.Apply(Event{Type: SlideNext}))
	err := s.Apply(Event{Type: SlideNext})
	assert.True(t, errors.Is(err, ErrRateLimited))
	assert.Equal(t, 2, s.Snapshot().Slide.Index)
}

func TestSession_SubscribeCoalesces(t *testing.T) {
	s, _ := newSession(t, DefaultConfig())
	ch, cancel := s.Subscribe()

	require.NoError(t, s.Apply(Event{Type: SlideNext}))
	require.NoError(t, s.Apply(Event{Type: SlideNext}))

	<-ch
	select {
	case <-ch:
		t.Fatal("expected a single coalesced signal")
	default:
	}

	cancel()
	cancel()
	_, open := <-ch
	assert.False(t, open)
}

func TestSession_CloseStopsEverything(t *testing.T) {
	s, clk := newSession(t, DefaultConfig())
	ch, _ := s.Subscribe()

	require.NoError(t, s.Apply(Event{Type: CounterVisible, Index: intp(0)}))
	require.NoError(t, s.Apply(Event{Type: RoomOpen, RoomID: content.Rooms[0].ID}))
	require.NoError(t, s.Apply(Event{Type: Layout, Anchors: map[string]int{"contact": 900}}))
	require.NoError(t, s.Apply(Event{Type: Navigate, Section: "contact", Anchor: "contact"}))

	s.Close()
	s.Close()

	assert.Equal(t, 0, clk.Pending())
	assert.False(t, s.Snapshot().Overlay.ScrollLocked)
	assert.True(t, errors.Is(s.Apply(Event{Type: SlideNext}), ErrClosed))

	for range ch {
	}
	clk.Advance(time.Minute)
	assert.Nil(t, s.Snapshot().Scroll)
}
