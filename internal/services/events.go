package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/observability"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
	"github.com/yungbote/catalog-backend/internal/realtime"
)

// EventPublisher is the write side of the event bus.
type EventPublisher interface {
	Publish(ctx context.Context, ev realtime.CatalogEvent) error
}

// CatalogNotifier announces committed writes. Publishing is best effort: a
// failed publish is logged and counted but never fails the request.
type CatalogNotifier struct {
	pub     EventPublisher
	metrics *observability.Metrics
	log     *logger.Logger
}

func NewCatalogNotifier(pub EventPublisher, metrics *observability.Metrics, log *logger.Logger) *CatalogNotifier {
	return &CatalogNotifier{pub: pub, metrics: metrics, log: log.With("service", "CatalogNotifier")}
}

func (n *CatalogNotifier) Notify(ctx context.Context, resource string, action realtime.Action, id uuid.UUID) {
	if n == nil || n.pub == nil {
		return
	}
	ev := realtime.NewCatalogEvent(resource, action, id)
	if err := n.pub.Publish(ctx, ev); err != nil {
		n.metrics.IncEventPublished(resource, string(action), "error")
		n.log.Warn("publish catalog event failed", "resource", resource, "action", action, "id", id, "error", err)
		return
	}
	n.metrics.IncEventPublished(resource, string(action), "ok")
}
