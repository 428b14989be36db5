package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type CategoryRepo = catalog.CategoryRepo
type GenreRepo = catalog.GenreRepo
type CastMemberRepo = catalog.CastMemberRepo
type VideoRepo = catalog.VideoRepo

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	return catalog.NewCategoryRepo(db, baseLog)
}
func NewGenreRepo(db *gorm.DB, baseLog *logger.Logger) GenreRepo {
	return catalog.NewGenreRepo(db, baseLog)
}
func NewCastMemberRepo(db *gorm.DB, baseLog *logger.Logger) CastMemberRepo {
	return catalog.NewCastMemberRepo(db, baseLog)
}
func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	return catalog.NewVideoRepo(db, baseLog)
}
