package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
	"github.com/yungbote/catalog-backend/internal/services"
)

type Services struct {
	Category   services.CategoryService
	Genre      services.GenreService
	CastMember services.CastMemberService
	Video      services.VideoService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos, clients Clients) Services {
	log.Info("Wiring services...")
	deps := services.CatalogDeps{
		Base: aggregates.BaseDeps{
			DB:    db,
			Log:   log,
			Hooks: aggregates.NewObservabilityHooks(clients.Metrics),
		},
		Categories:  reposet.Category,
		Genres:      reposet.Genre,
		CastMembers: reposet.CastMember,
		Videos:      reposet.Video,
		Notifier:    services.NewCatalogNotifier(clients.Bus, clients.Metrics, log),
	}
	return Services{
		Category:   services.NewCategoryService(deps),
		Genre:      services.NewGenreService(deps),
		CastMember: services.NewCastMemberService(deps),
		Video:      services.NewVideoService(deps),
	}
}
