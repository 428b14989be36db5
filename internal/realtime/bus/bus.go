package bus

import (
	"context"

	"github.com/yungbote/catalog-backend/internal/realtime"
)

// Bus fans catalog change events out to every subscribed process.
type Bus interface {
	Publish(ctx context.Context, ev realtime.CatalogEvent) error
	StartForwarder(ctx context.Context, onMsg func(ev realtime.CatalogEvent)) error
	Close() error
}
