package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type Repos struct {
	Category   repos.CategoryRepo
	Genre      repos.GenreRepo
	CastMember repos.CastMemberRepo
	Video      repos.VideoRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Category:   repos.NewCategoryRepo(db, log),
		Genre:      repos.NewGenreRepo(db, log),
		CastMember: repos.NewCastMemberRepo(db, log),
		Video:      repos.NewVideoRepo(db, log),
	}
}
