// Package counter animates a headline figure such as "1000+" or "5.0/5"
// from zero up to its value once it first becomes visible.
package counter

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"betu_homestay/internal/clock"
)

const (
	DefaultDuration = 2 * time.Second
	FrameRate       = 60
)

// Target is a display string split around its leading numeric run.
type Target struct {
	Raw       string
	Prefix    string
	Suffix    string
	Value     float64
	Precision int // 1 when the raw string contains a decimal point
	HasNumber bool
}

// Parse locates the first run of digits and dots in s. Text before and
// after it is kept verbatim.
func Parse(s string) Target {
	t := Target{Raw: s}
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return t
	}
	// a dot directly before the first digit belongs to the number (".5")
	if start > 0 && s[start-1] == '.' {
		start--
	}
	end := start
	for end < len(s) && (isDigit(rune(s[end])) || s[end] == '.') {
		end++
	}
	num := s[start:end]
	v, err := strconv.ParseFloat(leadingFloat(num), 64)
	if err != nil {
		return t
	}
	t.Prefix, t.Suffix = s[:start], s[end:]
	t.Value = v
	t.HasNumber = true
	if strings.Contains(s, ".") {
		t.Precision = 1
	}
	return t
}

// Format renders v in place of the numeric run.
func (t Target) Format(v float64) string {
	if !t.HasNumber {
		return t.Raw
	}
	return t.Prefix + strconv.FormatFloat(v, 'f', t.Precision, 64) + t.Suffix
}

type Option func(*Counter)

func WithDuration(d time.Duration) Option {
	return func(c *Counter) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithOnChange registers a callback run, outside the lock, after every frame.
func WithOnChange(f func(display string)) Option {
	return func(c *Counter) { c.onChange = f }
}

// Counter is safe for concurrent use.
type Counter struct {
	mu       sync.Mutex
	clk      clock.Clock
	target   Target
	duration time.Duration
	onChange func(string)

	frames  int
	frame   int
	display string
	started bool
	timer   clock.Timer
	gen     uint64
	closed  bool
}

func New(clk clock.Clock, target string, opts ...Option) *Counter {
	c := &Counter{
		clk:      clk,
		target:   Parse(target),
		duration: DefaultDuration,
	}
	for _, o := range opts {
		o(c)
	}
	c.frames = int(c.duration.Seconds() * FrameRate)
	if c.frames < 1 {
		c.frames = 1
	}
	c.display = c.target.Format(0)
	return c
}

func (c *Counter) Target() Target { return c.target }

func (c *Counter) Display() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.display
}

// Done reports whether the counter shows its final value.
func (c *Counter) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.target.HasNumber || c.frame >= c.frames
}

// Visible starts the animation the first time it is called; later calls
// are ignored. It reports whether this call started it.
func (c *Counter) Visible() bool {
	c.mu.Lock()
	if c.closed || c.started || !c.target.HasNumber {
		c.mu.Unlock()
		return false
	}
	c.started = true
	c.armLocked()
	c.mu.Unlock()
	return true
}

// Close stops a running animation. The display keeps its last frame.
func (c *Counter) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopLocked()
}

func (c *Counter) armLocked() {
	c.gen++
	gen := c.gen
	c.timer = c.clk.AfterFunc(time.Second/FrameRate, func() { c.onFrame(gen) })
}

func (c *Counter) stopLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
}

func (c *Counter) onFrame(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.frame++
	v := c.target.Value * float64(c.frame) / float64(c.frames)
	if c.frame >= c.frames || v > c.target.Value {
		c.frame = c.frames
		v = c.target.Value
	}
	c.display = c.target.Format(v)
	if c.frame < c.frames {
		c.armLocked()
	}
	d, cb := c.display, c.onChange
	c.mu.Unlock()

	if cb != nil {
		cb(d)
	}
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// leadingFloat trims a run like "1.2.3" to its parseable head "1.2".
func leadingFloat(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		if j := strings.IndexByte(s[i+1:], '.'); j >= 0 {
			s = s[:i+1+j]
		}
	}
	return strings.TrimSuffix(s, ".")
}
