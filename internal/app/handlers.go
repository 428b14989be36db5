package app

import (
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/http/handlers"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type Handlers struct {
	Category   *handlers.CRUDHandler[types.Category]
	Genre      *handlers.CRUDHandler[types.Genre]
	CastMember *handlers.CRUDHandler[types.CastMember]
	Video      *handlers.CRUDHandler[types.Video]

	Health *handlers.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services, db handlers.Pinger) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Category:   handlers.NewCRUDHandler("category", serviceset.Category),
		Genre:      handlers.NewCRUDHandler("genre", serviceset.Genre),
		CastMember: handlers.NewCRUDHandler("cast_member", serviceset.CastMember),
		Video:      handlers.NewCRUDHandler("video", serviceset.Video),
		Health:     handlers.NewHealthHandler(db),
	}
}
