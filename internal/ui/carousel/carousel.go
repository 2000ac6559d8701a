// Package carousel implements the hero rotator: a fixed ring of slides that
// advances on a timer, can be stepped manually, and pauses autoplay after
// every manual step until a resume delay passes without further input.
package carousel

import (
	"errors"
	"sync"
	"time"

	"betu_homestay/internal/clock"
)

var ErrSlideOutOfRange = errors.New("carousel: slide out of range")

const (
	DefaultInterval    = 5000 * time.Millisecond
	DefaultResumeDelay = 10000 * time.Millisecond
)

type State struct {
	Index    int  `json:"index"`
	Autoplay bool `json:"autoplay"`
}

type Option func(*Rotator)

func WithInterval(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.interval = d
		}
	}
}

func WithResumeDelay(d time.Duration) Option {
	return func(r *Rotator) {
		if d > 0 {
			r.resumeDelay = d
		}
	}
}

// WithOnChange registers a callback invoked after every state change. It
// runs outside the rotator's lock, so it may read State.
func WithOnChange(f func(State)) Option {
	return func(r *Rotator) { r.onChange = f }
}

// Rotator is safe for concurrent use. At most one repeating timer and one
// resume timer are armed at any time; each carries a generation token so a
// callback that lost a race with Stop cannot mutate state.
type Rotator struct {
	mu          sync.Mutex
	clk         clock.Clock
	n           int
	interval    time.Duration
	resumeDelay time.Duration
	onChange    func(State)

	index     int
	autoplay  bool
	tick      clock.Timer
	tickGen   uint64
	resume    clock.Timer
	resumeGen uint64
	closed    bool
}

// New mounts a rotator over n slides: index 0, autoplay on.
func New(clk clock.Clock, n int, opts ...Option) *Rotator {
	if n < 1 {
		n = 1
	}
	r := &Rotator{
		clk:         clk,
		n:           n,
		interval:    DefaultInterval,
		resumeDelay: DefaultResumeDelay,
		autoplay:    true,
	}
	for _, o := range opts {
		o(r)
	}
	r.mu.Lock()
	r.armTickLocked()
	r.mu.Unlock()
	return r
}

func (r *Rotator) Len() int { return r.n }

func (r *Rotator) Interval() time.Duration { return r.interval }

func (r *Rotator) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stateLocked()
}

func (r *Rotator) Next() {
	r.interact(func(i int) int { return (i + 1) % r.n })
}

func (r *Rotator) Prev() {
	r.interact(func(i int) int { return (i - 1 + r.n) % r.n })
}

func (r *Rotator) Jump(k int) error {
	if k < 0 || k >= r.n {
		return ErrSlideOutOfRange
	}
	r.interact(func(int) int { return k })
	return nil
}

// Close unmounts the rotator. Pending timers are stopped and any callback
// already in flight becomes a no-op. Safe to call more than once.
func (r *Rotator) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	r.stopTickLocked()
	r.stopResumeLocked()
}

func (r *Rotator) interact(step func(int) int) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.index = step(r.index)
	r.autoplay = false
	r.stopTickLocked()
	r.stopResumeLocked()
	r.resumeGen++
	gen := r.resumeGen
	r.resume = r.clk.AfterFunc(r.resumeDelay, func() { r.onResume(gen) })
	st, cb := r.stateLocked(), r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(st)
	}
}

func (r *Rotator) onTick(gen uint64) {
	r.mu.Lock()
	if r.closed || !r.autoplay || gen != r.tickGen {
		r.mu.Unlock()
		return
	}
	r.tick = nil
	r.index = (r.index + 1) % r.n
	r.armTickLocked()
	st, cb := r.stateLocked(), r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(st)
	}
}

func (r *Rotator) onResume(gen uint64) {
	r.mu.Lock()
	if r.closed || gen != r.resumeGen {
		r.mu.Unlock()
		return
	}
	r.resume = nil
	r.autoplay = true
	r.armTickLocked()
	st, cb := r.stateLocked(), r.onChange
	r.mu.Unlock()

	if cb != nil {
		cb(st)
	}
}

func (r *Rotator) armTickLocked() {
	r.stopTickLocked()
	gen := r.tickGen
	r.tick = r.clk.AfterFunc(r.interval, func() { r.onTick(gen) })
}

func (r *Rotator) stopTickLocked() {
	if r.tick != nil {
		r.tick.Stop()
		r.tick = nil
	}
	r.tickGen++
}

func (r *Rotator) stopResumeLocked() {
	if r.resume != nil {
		r.resume.Stop()
		r.resume = nil
	}
	r.resumeGen++
}

func (r *Rotator) stateLocked() State {
	return State{Index: r.index, Autoplay: r.autoplay}
}
