package app

import (
	"fmt"

	"betu_homestay/internal/domain"
)

// cache keys
const (
	siteKey  = "site:v1"
	roomsKey = "rooms:list"
)

func roomKey(id int64) string { return fmt.Sprintf("room:%d", id) }

// catalogKeys lists every cache entry derived from the given rooms.
func catalogKeys(rooms []domain.Room) []string {
	keys := []string{siteKey, roomsKey}
	for _, r := range rooms {
		keys = append(keys, roomKey(r.ID))
	}
	return keys
}

func cloneRoom(r domain.Room) domain.Room {
	r.Gallery = append([]string(nil), r.Gallery...)
	r.Features = append([]string(nil), r.Features...)
	return r
}

func cloneRooms(in []domain.Room) []domain.Room {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Room, len(in))
	for i, r := range in {
		out[i] = cloneRoom(r)
	}
	return out
}

func roomIDs(rooms []domain.Room) []int64 {
	ids := make([]int64, len(rooms))
	for i, r := range rooms {
		ids[i] = r.ID
	}
	return ids
}
