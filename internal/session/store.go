package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"betu_homestay/internal/adapters/observability"
	"betu_homestay/internal/clock"
	"betu_homestay/internal/domain"
)

var (
	ErrNotFound        = fmt.Errorf("session: %w", domain.ErrNotFound)
	ErrTooManySessions = errors.New("session: too many live sessions")
)

const (
	DefaultTTL         = 30 * time.Minute
	DefaultMaxSessions = 5000
)

// Store owns the live sessions. Sessions idle longer than the TTL are
// closed by Reap.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	clk      clock.Clock
	ttl      time.Duration
	site     domain.SiteView
	rooms    []domain.Room
	cfg      Config
	newID    func() string
}

func NewStore(clk clock.Clock, ttl time.Duration, site domain.SiteView, rooms []domain.Room, cfg Config) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		sessions: map[string]*Session{},
		clk:      clk,
		ttl:      ttl,
		site:     site,
		rooms:    rooms,
		cfg:      cfg.withDefaults(),
		newID:    uuid.NewString,
	}
}

// Create mounts a new session, or fails with ErrTooManySessions once
// MaxSessions are live.
func (st *Store) Create() (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if len(st.sessions) >= st.cfg.MaxSessions {
		log.Warn().Int("live", len(st.sessions)).Msg("session limit reached")
		return nil, ErrTooManySessions
	}
	s := New(st.newID(), st.clk, st.site, st.rooms, st.cfg)
	st.sessions[s.ID()] = s
	observability.SessionOpened()
	log.Debug().Str("session", s.ID()).Msg("session opened")
	return s, nil
}

func (st *Store) Get(id string) (*Session, error) {
	st.mu.Lock()
	s, ok := st.sessions[id]
	st.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	return s, nil
}

func (st *Store) Close(id string) error {
	st.mu.Lock()
	s, ok := st.sessions[id]
	delete(st.sessions, id)
	st.mu.Unlock()
	if !ok {
		return fmt.Errorf("%q: %w", id, ErrNotFound)
	}
	s.Close()
	observability.SessionClosed()
	log.Debug().Str("session", id).Msg("session closed")
	return nil
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

// Reap closes sessions idle past the TTL and returns how many it closed.
func (st *Store) Reap() int {
	now := st.clk.Now()
	var stale []string
	st.mu.Lock()
	for id, s := range st.sessions {
		if now.Sub(s.LastSeen()) > st.ttl {
			stale = append(stale, id)
		}
	}
	st.mu.Unlock()

	n := 0
	for _, id := range stale {
		if st.Close(id) == nil {
			n++
		}
	}
	if n > 0 {
		log.Info().Int("reaped", n).Msg("idle sessions closed")
	}
	return n
}

// Run reaps every interval until ctx is done, then closes every session.
func (st *Store) Run(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			st.Shutdown()
			return
		case <-t.C:
			st.Reap()
		}
	}
}

func (st *Store) Shutdown() {
	st.mu.Lock()
	ids := make([]string, 0, len(st.sessions))
	for id := range st.sessions {
		ids = append(ids, id)
	}
	st.mu.Unlock()
	for _, id := range ids {
		_ = st.Close(id)
	}
}
