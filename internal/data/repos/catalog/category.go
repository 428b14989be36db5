package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type CategoryRepo interface {
	Store[types.Category]
}

type categoryRepo struct {
	*gormStore[types.Category, *types.Category]
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
	repoLog := baseLog.With("repo", "CategoryRepo")
	return &categoryRepo{gormStore: newGormStore[types.Category, *types.Category](db, repoLog, "category",
		categoryGenrePivot.relatedRef(), categoryVideoPivot.relatedRef())}
}
