// Package navigate scrolls the viewport to in-page sections.
package navigate

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"betu_homestay/internal/clock"
)

const (
	DefaultSettleDelay  = 150 * time.Millisecond
	DefaultHeaderOffset = 80
)

// Document resolves an anchor id to the element's offset from the top of
// the document.
type Document interface {
	Offset(anchor string) (top int, ok bool)
}

type Viewport interface {
	ScrollTo(y int)
}

type Option func(*Navigator)

func WithSettleDelay(d time.Duration) Option {
	return func(n *Navigator) {
		if d > 0 {
			n.settle = d
		}
	}
}

func WithHeaderOffset(px int) Option {
	return func(n *Navigator) { n.headerOffset = px }
}

func WithLogger(l zerolog.Logger) Option {
	return func(n *Navigator) { n.log = l }
}

// Navigator is fire-and-forget: Navigate never returns an error. Only the
// latest pending lookup may scroll.
type Navigator struct {
	mu           sync.Mutex
	clk          clock.Clock
	doc          Document
	view         Viewport
	settle       time.Duration
	headerOffset int
	log          zerolog.Logger

	section string
	pending clock.Timer
	gen     uint64
	closed  bool
}

func New(clk clock.Clock, doc Document, view Viewport, opts ...Option) *Navigator {
	n := &Navigator{
		clk:          clk,
		doc:          doc,
		view:         view,
		settle:       DefaultSettleDelay,
		headerOffset: DefaultHeaderOffset,
		log:          log.Logger,
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// Section returns the name passed to the last Navigate call.
func (n *Navigator) Section() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.section
}

func (n *Navigator) Navigate(section, anchor string) {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.section = section
	n.cancelLocked()
	if anchor == "" {
		n.mu.Unlock()
		n.view.ScrollTo(0)
		return
	}
	gen := n.gen
	n.pending = n.clk.AfterFunc(n.settle, func() { n.resolve(gen, section, anchor) })
	n.mu.Unlock()
}

// Close cancels any pending lookup. Later calls to Navigate are ignored.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
	n.cancelLocked()
}

func (n *Navigator) resolve(gen uint64, section, anchor string) {
	n.mu.Lock()
	if n.closed || gen != n.gen {
		n.mu.Unlock()
		return
	}
	n.pending = nil
	n.mu.Unlock()

	top, ok := n.doc.Offset(anchor)
	if !ok {
		n.log.Warn().Str("section", section).Str("anchor", anchor).Msg("navigation target not found")
		return
	}
	n.view.ScrollTo(max(0, top-n.headerOffset))
}

func (n *Navigator) cancelLocked() {
	if n.pending != nil {
		n.pending.Stop()
		n.pending = nil
	}
	n.gen++
}
