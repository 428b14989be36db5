package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/catalog-backend/internal/http/handlers"
	httpMW "github.com/yungbote/catalog-backend/internal/http/middleware"
	"github.com/yungbote/catalog-backend/internal/observability"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

// ResourceHandler mounts the routes of one catalog resource.
type ResourceHandler interface {
	Register(g *gin.RouterGroup)
}

type Resource struct {
	Path    string
	Handler ResourceHandler
}

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	TracingService string
	CORSOrigins    []string

	HealthHandler *httpH.HealthHandler
	Resources     []Resource
}

const (
	healthPath  = "/healthcheck"
	metricsPath = "/metrics"
)

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingService != "" {
		r.Use(otelgin.Middleware(cfg.TracingService))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics, metricsPath, healthPath))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET(healthPath, cfg.HealthHandler.HealthCheck)
	}
	// Metrics
	if cfg.Metrics != nil {
		r.GET(metricsPath, gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	for _, res := range cfg.Resources {
		if res.Handler == nil {
			continue
		}
		res.Handler.Register(api.Group("/" + res.Path))
	}
	return r
}
