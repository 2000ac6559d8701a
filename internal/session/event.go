package session

import (
	"errors"
	"fmt"
)

var (
	ErrBadEvent    = errors.New("session: bad event")
	ErrRateLimited = errors.New("session: too many events")
	ErrClosed      = errors.New("session: closed")
)

// Event types accepted by Apply.
const (
	SlideNext         = "slide.next"
	SlidePrev         = "slide.prev"
	SlideJump         = "slide.jump"
	CounterVisible    = "counter.visible"
	RoomOpen          = "room.open"
	ImageOpen         = "image.open"
	ContactOpen       = "contact.open"
	ChatOpen          = "chat.open"
	OverlayClose      = "overlay.close"
	OverlayBackground = "overlay.background"
	OverlayContent    = "overlay.content"
	Layout            = "layout"
	Scroll            = "scroll"
	Navigate          = "navigate"
)

var knownTypes = map[string]bool{
	SlideNext: true, SlidePrev: true, SlideJump: true, CounterVisible: true,
	RoomOpen: true, ImageOpen: true, ContactOpen: true, ChatOpen: true,
	OverlayClose: true, OverlayBackground: true, OverlayContent: true,
	Layout: true, Scroll: true, Navigate: true,
}

// typeLabel bounds the metric label set to the known event types.
func typeLabel(typ string) string {
	if knownTypes[typ] {
		return typ
	}
	return "unknown"
}

// Event is one client interaction. Only the fields relevant to Type are read.
type Event struct {
	Type    string         `json:"type"`
	Index   *int           `json:"index,omitempty"`   // slide.jump, counter.visible
	RoomID  int64          `json:"room_id,omitempty"` // room.open
	Src     string         `json:"src,omitempty"`     // image.open
	Layer   string         `json:"layer,omitempty"`   // overlay.*
	Anchors map[string]int `json:"anchors,omitempty"` // layout: anchor id -> offsetTop
	Y       *int           `json:"y,omitempty"`       // scroll
	Section string         `json:"section,omitempty"` // navigate
	Anchor  string         `json:"anchor,omitempty"`  // navigate
}

func badEvent(ev Event, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrBadEvent, ev.Type, fmt.Sprintf(format, args...))
}
