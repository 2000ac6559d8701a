package overlay

import "sync"

// ScrollLock suppresses page scrolling while at least one holder exists.
// It replaces a single shared flag so that one overlay closing cannot
// re-enable scrolling under another overlay that is still open.
type ScrollLock struct {
	mu       sync.Mutex
	holders  int
	onChange func(locked bool)
}

func NewScrollLock(onChange func(locked bool)) *ScrollLock {
	return &ScrollLock{onChange: onChange}
}

// Acquire adds a holder and returns its release func. Releasing more than
// once is a no-op.
func (s *ScrollLock) Acquire() (release func()) {
	s.mu.Lock()
	s.holders++
	flipped := s.holders == 1
	s.mu.Unlock()
	if flipped {
		s.notify(true)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.holders--
			flipped := s.holders == 0
			s.mu.Unlock()
			if flipped {
				s.notify(false)
			}
		})
	}
}

func (s *ScrollLock) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holders > 0
}

func (s *ScrollLock) Holders() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holders
}

func (s *ScrollLock) notify(locked bool) {
	if s.onChange != nil {
		s.onChange(locked)
	}
}
