package domain

import "context"

// CatalogRepository is the room store behind the query service. The static
// registry and the MySQL mirror both satisfy it.
type CatalogRepository interface {
	ListRooms(ctx context.Context) ([]Room, error)
	GetRoom(ctx context.Context, id int64) (Room, error)
}

// CatalogWriter is implemented by stores the registry can be published into.
type CatalogWriter interface {
	UpsertRoom(ctx context.Context, r Room) error
	DeleteRoomsExcept(ctx context.Context, keep []int64) error
	RecordPublish(ctx context.Context, rooms int) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
