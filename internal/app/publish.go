package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"betu_homestay/internal/adapters/observability"
	"betu_homestay/internal/content"
	"betu_homestay/internal/domain"
)

// PublishService copies the room registry into the catalog mirror and
// evicts every cached read model built from it.
type PublishService struct {
	w       domain.CatalogWriter
	cache   domain.Cache
	workers int
}

func NewPublishService(w domain.CatalogWriter, cache domain.Cache, workers int) *PublishService {
	if workers < 1 {
		workers = 1
	}
	return &PublishService{w: w, cache: cache, workers: workers}
}

type PublishReport struct {
	Rooms int
}

// Publish validates rooms, upserts them concurrently and then drops mirror
// rows for rooms that are no longer listed. Any upsert failure aborts
// before the delete so a partial run never shrinks the mirror.
func (s *PublishService) Publish(ctx context.Context, rooms []domain.Room) (PublishReport, error) {
	if err := content.Validate(rooms, content.Slides, content.Navigation); err != nil {
		return PublishReport{}, err
	}

	sem := semaphore.NewWeighted(int64(s.workers))
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, r := range rooms {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			errs = append(errs, err)
			break
		}

		wg.Add(1)
		go func(room domain.Room) {
			defer wg.Done()
			defer sem.Release(1)

			err := s.w.UpsertRoom(ctx, room)
			observability.ObservePublish(err)
			if err != nil {
				log.Warn().Int64("id", room.ID).Err(err).Msg("publish room failed")
				mu.Lock()
				errs = append(errs, fmt.Errorf("room %d: %w", room.ID, err))
				mu.Unlock()
				return
			}
			log.Info().Int64("id", room.ID).Msg("publish room ok")
		}(r)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return PublishReport{}, err
	}
	if err := s.w.DeleteRoomsExcept(ctx, roomIDs(rooms)); err != nil {
		return PublishReport{}, fmt.Errorf("prune mirror: %w", err)
	}
	if err := s.w.RecordPublish(ctx, len(rooms)); err != nil {
		log.Warn().Err(err).Msg("record publish run failed")
	}

	if s.cache != nil {
		for _, k := range catalogKeys(rooms) {
			_ = s.cache.Del(ctx, k)
		}
	}
	return PublishReport{Rooms: len(rooms)}, nil
}
