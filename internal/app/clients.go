package app

import (
	"context"
	"strings"

	"github.com/yungbote/catalog-backend/internal/observability"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
	"github.com/yungbote/catalog-backend/internal/realtime/bus"
)

type Clients struct {
	Bus     bus.Bus
	Metrics *observability.Metrics
	// ShutdownTracing flushes and stops the tracer provider.
	ShutdownTracing func(context.Context) error
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	if strings.TrimSpace(cfg.Redis.Addr) != "" {
		b, err := bus.NewRedisBus(log, cfg.Redis)
		if err != nil {
			return out, err
		}
		out.Bus = b
	} else {
		log.Info("REDIS_ADDR not set; catalog events stay in process")
		out.Bus = bus.NewMemoryBus()
	}

	if cfg.MetricsEnabled {
		out.Metrics = observability.NewMetrics()
	}
	out.ShutdownTracing = observability.InitOTel(ctx, log, cfg.Otel)
	return out, nil
}

func (c Clients) Close(ctx context.Context) {
	if c.Bus != nil {
		_ = c.Bus.Close()
	}
	if c.ShutdownTracing != nil {
		_ = c.ShutdownTracing(ctx)
	}
}
