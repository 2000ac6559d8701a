package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"betu_homestay/internal/app"
	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	rooms []domain.Room
	calls int
}

func (f *fakeRepo) ListRooms(ctx context.Context) ([]domain.Room, error) {
	f.calls++
	return f.rooms, nil
}

func (f *fakeRepo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	f.calls++
	for _, r := range f.rooms {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Room{}, domain.ErrNotFound
}

type fakeCache struct {
	store map[string]any
	dels  []string
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.SiteView:
		*d = v.(domain.SiteView)
	case *domain.RoomsPage:
		*d = v.(domain.RoomsPage)
	case *domain.Room:
		*d = v.(domain.Room)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	c.dels = append(c.dels, key)
	delete(c.store, key)
	return nil
}

func twoRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "Deluxe", Gallery: []string{"/a.png", "/b.png"}},
		{ID: 2, Name: "Standard", Gallery: []string{"/c.png"}},
	}
}

// ---- tests ----

func TestListRooms_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{rooms: twoRooms()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, 10*time.Minute, content.Site())

	// Miss (first time, populates cache)
	out, err := q.ListRooms(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(out.Items) != 2 || out.Items[0].Name != "Deluxe" {
		t.Fatalf("unexpected rooms: %+v", out.Items)
	}

	// Mutate repo to ensure second read indeed comes from cache
	repo.rooms[0].Name = "SHOULD NOT SEE THIS"
	repo.rooms[0].Gallery[0] = "/changed.png"

	out2, _ := q.ListRooms(context.Background())
	if out2.Items[0].Name != "Deluxe" || out2.Items[0].Gallery[0] != "/a.png" {
		t.Fatalf("expected cached copy, got %+v", out2.Items[0])
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repo call, got %d", repo.calls)
	}
}

func TestGetRoom_Cache(t *testing.T) {
	repo := &fakeRepo{rooms: twoRooms()}
	cache := &fakeCache{}
	q := app.NewQueryService(repo, cache, time.Minute, content.Site())

	r, err := q.GetRoom(context.Background(), 2)
	if err != nil || r.Name != "Standard" {
		t.Fatalf("GetRoom: %+v %v", r, err)
	}
	if _, ok := cache.store["room:2"]; !ok {
		t.Fatalf("expected room:2 to be cached")
	}

	if _, err := q.GetRoom(context.Background(), 7); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSite_WithoutCache(t *testing.T) {
	q := app.NewQueryService(content.Static{}, nil, time.Minute, content.Site())
	sv, err := q.Site(context.Background())
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if sv.Profile.Name != content.Profile.Name || len(sv.Slides) != content.SlideCount {
		t.Fatalf("unexpected site: %+v", sv.Profile)
	}

	page, err := q.ListRooms(context.Background())
	if err != nil || len(page.Items) != len(content.Rooms) {
		t.Fatalf("ListRooms without cache: %d %v", len(page.Items), err)
	}
}
