package app

import (
	"context"
	"encoding/json"
	"time"

	"betu_homestay/internal/domain"
)

// QueryService serves the catalog read models with a cache-aside in
// front of the catalog source. A nil cache disables caching.
type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
	site     domain.SiteView
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration, site domain.SiteView) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl, site: site}
}

func (s *QueryService) Site(ctx context.Context) (domain.SiteView, error) {
	var sv domain.SiteView
	if s.cacheGet(ctx, siteKey, &sv) {
		return sv, nil
	}
	sv = s.site
	s.cacheSet(ctx, siteKey, sv)
	return sv, nil
}

func (s *QueryService) ListRooms(ctx context.Context) (domain.RoomsPage, error) {
	var out domain.RoomsPage
	if s.cacheGet(ctx, roomsKey, &out) {
		return out, nil
	}

	rs, err := s.repo.ListRooms(ctx)
	if err != nil {
		return domain.RoomsPage{}, err
	}

	// copy to avoid aliasing the repo's backing arrays
	out = domain.RoomsPage{Items: cloneRooms(rs)}

	// optional size guard
	if b, _ := json.Marshal(out); len(b) < 1_000_000 {
		s.cacheSet(ctx, roomsKey, out)
	}
	return out, nil
}

func (s *QueryService) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	key := roomKey(id)
	var r domain.Room
	if s.cacheGet(ctx, key, &r) {
		return r, nil
	}
	r, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	r = cloneRoom(r)
	s.cacheSet(ctx, key, r)
	return r, nil
}

func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, _ := s.cache.Get(ctx, key, dst)
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds()))
}
