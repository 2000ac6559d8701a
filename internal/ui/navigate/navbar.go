package navigate

import "sync"

// SolidThreshold is the scroll offset past which the navbar turns opaque.
const SolidThreshold = 50

type Navbar struct {
	mu sync.Mutex
	y  int
}

// Sample records the current vertical scroll position and reports whether
// the solid state flipped.
func (b *Navbar) Sample(y int) (changed bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	was := b.y > SolidThreshold
	b.y = y
	return was != (y > SolidThreshold)
}

func (b *Navbar) Solid() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.y > SolidThreshold
}
