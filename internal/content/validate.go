package content

import (
	"fmt"

	"betu_homestay/internal/domain"
)

// SlideCount is the fixed length of the hero rotation.
const SlideCount = 4

// Validate checks the catalog invariants the page relies on. The returned
// error wraps domain.ErrInvalidCatalog.
func Validate(rooms []domain.Room, slides []domain.Slide, nav []domain.NavigationItem) error {
	seen := make(map[int64]struct{}, len(rooms))
	for _, r := range rooms {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("%w: duplicate room id %d", domain.ErrInvalidCatalog, r.ID)
		}
		seen[r.ID] = struct{}{}
		if len(r.Gallery) == 0 {
			return fmt.Errorf("%w: room %d has an empty gallery", domain.ErrInvalidCatalog, r.ID)
		}
	}
	if len(slides) != SlideCount {
		return fmt.Errorf("%w: want %d slides, got %d", domain.ErrInvalidCatalog, SlideCount, len(slides))
	}
	anchors := make(map[string]struct{}, len(Anchors))
	for _, a := range Anchors {
		anchors[a] = struct{}{}
	}
	for _, n := range nav {
		if _, ok := anchors[n.Target]; !ok {
			return fmt.Errorf("%w: navigation target %q has no anchor", domain.ErrInvalidCatalog, n.Target)
		}
	}
	return nil
}
