// Package overlay tracks the modal layers stacked over the page (room
// detail, contact options, chat QR, image lightbox) and holds the scroll
// lock on behalf of each open layer.
package overlay

import (
	"errors"
	"fmt"
	"sync"

	"betu_homestay/internal/domain"
)

// Layer values are ordered bottom to top.
type Layer int

const (
	RoomDetail Layer = iota + 1
	ContactOptions
	ChatQR
	Lightbox
)

var layerNames = map[Layer]string{
	RoomDetail:     "room",
	ContactOptions: "contact",
	ChatQR:         "chat",
	Lightbox:       "lightbox",
}

func (l Layer) String() string {
	if n, ok := layerNames[l]; ok {
		return n
	}
	return fmt.Sprintf("layer(%d)", int(l))
}

func ParseLayer(s string) (Layer, error) {
	for l, n := range layerNames {
		if n == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

var (
	ErrUnknownLayer = errors.New("overlay: unknown layer")
	ErrNoRoomOpen   = errors.New("overlay: no room open")
	ErrNotInGallery = errors.New("overlay: image not in room gallery")
)

type State struct {
	RoomID       int64  `json:"room_id,omitempty"`
	Image        string `json:"image,omitempty"`
	Contact      bool   `json:"contact"`
	Chat         bool   `json:"chat"`
	Top          string `json:"top,omitempty"`
	ScrollLocked bool   `json:"scroll_locked"`
}

// Manager is safe for concurrent use. The three flags (selected room,
// selected image, contact/chat visibility) are independent of each other.
type Manager struct {
	mu       sync.Mutex
	rooms    map[int64]domain.Room
	lock     *ScrollLock
	onChange func(State)

	room    *domain.Room
	image   string
	contact bool
	chat    bool
	holds   map[Layer]func()
}

type Option func(*Manager)

// WithOnChange registers a callback run, outside the lock, after every
// open or close that changed something.
func WithOnChange(f func(State)) Option {
	return func(m *Manager) { m.onChange = f }
}

func NewManager(rooms []domain.Room, lock *ScrollLock, opts ...Option) *Manager {
	m := &Manager{
		rooms: make(map[int64]domain.Room, len(rooms)),
		lock:  lock,
		holds: make(map[Layer]func(), 4),
	}
	for _, r := range rooms {
		m.rooms[r.ID] = r
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

// Top returns the top-most open layer, or 0 when nothing is open.
func (m *Manager) Top() Layer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.topLocked()
}

func (m *Manager) OpenRoom(id int64) error {
	r, ok := m.rooms[id]
	if !ok {
		return fmt.Errorf("room %d: %w", id, domain.ErrNotFound)
	}
	m.mutate(func() {
		m.room = &r
		m.holdLocked(RoomDetail)
	})
	return nil
}

// OpenImage enlarges one image of the room currently shown in detail.
func (m *Manager) OpenImage(src string) error {
	m.mu.Lock()
	room := m.room
	m.mu.Unlock()
	if room == nil {
		return ErrNoRoomOpen
	}
	if !room.HasImage(src) {
		return fmt.Errorf("%w: %s", ErrNotInGallery, src)
	}
	m.mutate(func() {
		m.image = src
		m.holdLocked(Lightbox)
	})
	return nil
}

func (m *Manager) OpenContact() {
	m.mutate(func() {
		m.contact = true
		m.holdLocked(ContactOptions)
	})
}

func (m *Manager) OpenChat() {
	m.mutate(func() {
		m.chat = true
		m.holdLocked(ChatQR)
	})
}

// CloseLayer closes l if it is open.
func (m *Manager) CloseLayer(l Layer) {
	m.mutate(func() {
		switch l {
		case RoomDetail:
			m.room = nil
		case Lightbox:
			m.image = ""
		case ContactOptions:
			m.contact = false
		case ChatQR:
			m.chat = false
		}
		m.releaseLocked(l)
	})
}

// BackgroundClick handles a click on l's backdrop. Only the top-most open
// layer closes; it reports whether anything closed.
func (m *Manager) BackgroundClick(l Layer) bool {
	m.mu.Lock()
	top := m.topLocked()
	m.mu.Unlock()
	if top == 0 || top != l {
		return false
	}
	m.CloseLayer(l)
	return true
}

// ContentClick handles a click inside l's content box. It never reaches
// the backdrop handler, so nothing closes.
func (m *Manager) ContentClick(Layer) bool { return false }

// Close unmounts the manager: every layer closes and every scroll hold is
// released.
func (m *Manager) Close() {
	m.mutate(func() {
		m.room, m.image, m.contact, m.chat = nil, "", false, false
		for l := range m.holds {
			m.releaseLocked(l)
		}
	})
}

func (m *Manager) mutate(f func()) {
	m.mu.Lock()
	before := m.stateLocked()
	f()
	after := m.stateLocked()
	cb := m.onChange
	m.mu.Unlock()

	if cb != nil && before != after {
		cb(after)
	}
}

func (m *Manager) holdLocked(l Layer) {
	if _, held := m.holds[l]; !held {
		m.holds[l] = m.lock.Acquire()
	}
}

func (m *Manager) releaseLocked(l Layer) {
	if release, held := m.holds[l]; held {
		release()
		delete(m.holds, l)
	}
}

func (m *Manager) topLocked() Layer {
	switch {
	case m.image != "":
		return Lightbox
	case m.chat:
		return ChatQR
	case m.contact:
		return ContactOptions
	case m.room != nil:
		return RoomDetail
	}
	return 0
}

func (m *Manager) stateLocked() State {
	s := State{
		Image:        m.image,
		Contact:      m.contact,
		Chat:         m.chat,
		ScrollLocked: m.lock.Locked(),
	}
	if m.room != nil {
		s.RoomID = m.room.ID
	}
	if top := m.topLocked(); top != 0 {
		s.Top = top.String()
	}
	return s
}
