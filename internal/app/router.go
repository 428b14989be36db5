package app

import (
	apphttp "github.com/yungbote/catalog-backend/internal/http"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

func wireServer(log *logger.Logger, cfg Config, handlerset Handlers, clients Clients) *apphttp.Server {
	tracing := ""
	if cfg.Otel.Enabled {
		tracing = cfg.Otel.ServiceName
		if tracing == "" {
			tracing = "catalog-backend"
		}
	}
	return apphttp.NewServer(apphttp.RouterConfig{
		Log:            log,
		Metrics:        clients.Metrics,
		TracingService: tracing,
		CORSOrigins:    cfg.CORSOrigins,
		HealthHandler:  handlerset.Health,
		Resources: []apphttp.Resource{
			{Path: "categories", Handler: handlerset.Category},
			{Path: "genres", Handler: handlerset.Genre},
			{Path: "cast_members", Handler: handlerset.CastMember},
			{Path: "videos", Handler: handlerset.Video},
		},
	})
}
