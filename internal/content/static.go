package content

import (
	"context"
	"slices"

	"betu_homestay/internal/domain"
)

// Static serves the compiled-in room catalog through domain.CatalogRepository.
type Static struct{}

func (Static) ListRooms(ctx context.Context) ([]domain.Room, error) {
	out := make([]domain.Room, len(Rooms))
	for i, r := range Rooms {
		out[i] = cloneRoom(r)
	}
	return out, nil
}

func (Static) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	for _, r := range Rooms {
		if r.ID == id {
			return cloneRoom(r), nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

// callers must not be able to mutate the registry through returned slices
func cloneRoom(r domain.Room) domain.Room {
	r.Gallery = slices.Clone(r.Gallery)
	r.Features = slices.Clone(r.Features)
	return r
}
