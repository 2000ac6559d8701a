// Package session holds the per-visitor view state of the page: the hero
// rotator, the stat counters, the overlay stack and in-page navigation.
// A session lives from page mount until it is closed or expires, and every
// timer it owns stops with it.
package session

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"betu_homestay/internal/adapters/observability"
	"betu_homestay/internal/clock"
	"betu_homestay/internal/domain"
	"betu_homestay/internal/ui/carousel"
	"betu_homestay/internal/ui/counter"
	"betu_homestay/internal/ui/navigate"
	"betu_homestay/internal/ui/overlay"
)

type Config struct {
	SlideInterval   time.Duration
	ResumeDelay     time.Duration
	CounterDuration time.Duration
	SettleDelay     time.Duration
	HeaderOffset    int // 0 lands anchors flush with the top; negative selects the default
	EventRate       rate.Limit
	EventBurst      int
	MaxSessions     int // live sessions per Store
}

func DefaultConfig() Config {
	return Config{
		SlideInterval:   carousel.DefaultInterval,
		ResumeDelay:     carousel.DefaultResumeDelay,
		CounterDuration: counter.DefaultDuration,
		SettleDelay:     navigate.DefaultSettleDelay,
		HeaderOffset:    navigate.DefaultHeaderOffset,
		EventRate:       20,
		EventBurst:      40,
		MaxSessions:     DefaultMaxSessions,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SlideInterval <= 0 {
		c.SlideInterval = d.SlideInterval
	}
	if c.ResumeDelay <= 0 {
		c.ResumeDelay = d.ResumeDelay
	}
	if c.CounterDuration <= 0 {
		c.CounterDuration = d.CounterDuration
	}
	if c.SettleDelay <= 0 {
		c.SettleDelay = d.SettleDelay
	}
	if c.HeaderOffset < 0 {
		c.HeaderOffset = d.HeaderOffset
	}
	if c.EventBurst <= 0 {
		c.EventRate, c.EventBurst = d.EventRate, d.EventBurst
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = d.MaxSessions
	}
	return c
}

// ScrollCommand asks the client to scroll to Y. Seq grows with every
// command so the client applies each one exactly once.
type ScrollCommand struct {
	Seq uint64 `json:"seq"`
	Y   int    `json:"y"`
}

type View struct {
	ID          string         `json:"id"`
	Version     uint64         `json:"version"`
	Slide       carousel.State `json:"slide"`
	Counters    []string       `json:"counters"`
	Overlay     overlay.State  `json:"overlay"`
	NavbarSolid bool           `json:"navbar_solid"`
	Section     string         `json:"section,omitempty"`
	Scroll      *ScrollCommand `json:"scroll,omitempty"`
}

type Session struct {
	id      string
	clk     clock.Clock
	limiter *rate.Limiter

	rotator  *carousel.Rotator
	counters []*counter.Counter
	lock     *overlay.ScrollLock
	overlays *overlay.Manager
	nav      *navigate.Navigator
	navbar   navigate.Navbar

	mu       sync.Mutex
	layout   map[string]int
	scroll   *ScrollCommand
	seq      uint64
	version  uint64
	lastSeen time.Time
	subs     map[uint64]chan struct{}
	nextSub  uint64
	closed   bool
}

// New mounts a session over the site's slides and stats and the given rooms.
func New(id string, clk clock.Clock, site domain.SiteView, rooms []domain.Room, cfg Config) *Session {
	cfg = cfg.withDefaults()
	s := &Session{
		id:       id,
		clk:      clk,
		limiter:  rate.NewLimiter(cfg.EventRate, cfg.EventBurst),
		layout:   map[string]int{},
		lastSeen: clk.Now(),
		subs:     map[uint64]chan struct{}{},
	}
	s.rotator = carousel.New(clk, len(site.Slides),
		carousel.WithInterval(cfg.SlideInterval),
		carousel.WithResumeDelay(cfg.ResumeDelay),
		carousel.WithOnChange(func(carousel.State) { s.changed() }),
	)
	for _, st := range site.Stats {
		s.counters = append(s.counters, counter.New(clk, st.Value,
			counter.WithDuration(cfg.CounterDuration),
			counter.WithOnChange(func(string) { s.changed() }),
		))
	}
	s.lock = overlay.NewScrollLock(nil)
	s.overlays = overlay.NewManager(rooms, s.lock,
		overlay.WithOnChange(func(overlay.State) { s.changed() }))
	s.nav = navigate.New(clk, (*sessionDoc)(s), (*sessionViewport)(s),
		navigate.WithSettleDelay(cfg.SettleDelay),
		navigate.WithHeaderOffset(cfg.HeaderOffset),
	)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Touch marks the session as in use without changing its state.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastSeen = s.clk.Now()
	s.mu.Unlock()
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Apply routes one client event to the owning component.
func (s *Session) Apply(ev Event) error {
	err := s.apply(ev)
	observability.ObserveSessionEvent(typeLabel(ev.Type), resultLabel(err))
	return err
}

func (s *Session) apply(ev Event) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	s.lastSeen = s.clk.Now()
	s.mu.Unlock()

	if !s.limiter.Allow() {
		return ErrRateLimited
	}

	switch ev.Type {
	case SlideNext:
		s.rotator.Next()
	case SlidePrev:
		s.rotator.Prev()
	case SlideJump:
		if ev.Index == nil {
			return badEvent(ev, "index required")
		}
		if err := s.rotator.Jump(*ev.Index); err != nil {
			return badEvent(ev, "%v", err)
		}
	case CounterVisible:
		if ev.Index == nil || *ev.Index < 0 || *ev.Index >= len(s.counters) {
			return badEvent(ev, "stat index out of range")
		}
		s.counters[*ev.Index].Visible()
	case RoomOpen:
		if err := s.overlays.OpenRoom(ev.RoomID); err != nil {
			return badEvent(ev, "%v", err)
		}
	case ImageOpen:
		if err := s.overlays.OpenImage(ev.Src); err != nil {
			return badEvent(ev, "%v", err)
		}
	case ContactOpen:
		s.overlays.OpenContact()
	case ChatOpen:
		s.overlays.OpenChat()
	case OverlayClose, OverlayBackground, OverlayContent:
		l, err := overlay.ParseLayer(ev.Layer)
		if err != nil {
			return badEvent(ev, "%v", err)
		}
		switch ev.Type {
		case OverlayClose:
			s.overlays.CloseLayer(l)
		case OverlayBackground:
			s.overlays.BackgroundClick(l)
		default:
			s.overlays.ContentClick(l)
		}
	case Layout:
		if len(ev.Anchors) == 0 {
			return badEvent(ev, "anchors required")
		}
		s.mu.Lock()
		for k, v := range ev.Anchors {
			s.layout[k] = v
		}
		s.mu.Unlock()
	case Scroll:
		if ev.Y == nil {
			return badEvent(ev, "y required")
		}
		if s.navbar.Sample(*ev.Y) {
			s.changed()
		}
	case Navigate:
		s.nav.Navigate(ev.Section, ev.Anchor)
		s.changed()
	default:
		return badEvent(ev, "unknown type")
	}
	return nil
}

// Snapshot reads the version before the components: the state it returns
// is never older than the version it carries.
func (s *Session) Snapshot() View {
	v := View{ID: s.id}
	s.mu.Lock()
	v.Version = s.version
	if s.scroll != nil {
		sc := *s.scroll
		v.Scroll = &sc
	}
	s.mu.Unlock()

	v.Counters = make([]string, len(s.counters))
	for i, c := range s.counters {
		v.Counters[i] = c.Display()
	}
	v.Slide = s.rotator.State()
	v.Overlay = s.overlays.State()
	v.NavbarSolid = s.navbar.Solid()
	v.Section = s.nav.Section()
	return v
}

// Subscribe returns a channel that receives a signal after state changes.
// Signals coalesce: a slow reader sees one pending signal, not a backlog.
// The channel is closed when the session closes or cancel is called.
func (s *Session) Subscribe() (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close unmounts the session. Idempotent.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	subs := s.subs
	s.subs = map[uint64]chan struct{}{}
	s.mu.Unlock()

	s.rotator.Close()
	for _, c := range s.counters {
		c.Close()
	}
	s.overlays.Close()
	s.nav.Close()
	for _, ch := range subs {
		close(ch)
	}
}

func (s *Session) changed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.version++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrRateLimited):
		return "limited"
	}
	return "rejected"
}

type sessionDoc Session

func (d *sessionDoc) Offset(anchor string) (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	top, ok := d.layout[anchor]
	return top, ok
}

type sessionViewport Session

func (v *sessionViewport) ScrollTo(y int) {
	s := (*Session)(v)
	s.mu.Lock()
	s.seq++
	s.scroll = &ScrollCommand{Seq: s.seq, Y: y}
	s.mu.Unlock()
	s.changed()
}
