package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type GenreRepo interface {
	Store[types.Genre]
	// SyncCategories makes category_genre hold exactly categoryIDs for genreID.
	SyncCategories(dbc dbctx.Context, genreID uuid.UUID, categoryIDs []uuid.UUID) error
}

type genreRepo struct {
	*gormStore[types.Genre, *types.Genre]
}

var categoryGenrePivot = pivot{
	table:     types.CategoryGenre{}.TableName(),
	ownerKey:  "genre_id",
	relateKey: "category_id",
	row: func(owner, related uuid.UUID) any {
		return &types.CategoryGenre{GenreID: owner, CategoryID: related}
	},
}

func NewGenreRepo(db *gorm.DB, baseLog *logger.Logger) GenreRepo {
	repoLog := baseLog.With("repo", "GenreRepo")
	return &genreRepo{gormStore: newGormStore[types.Genre, *types.Genre](db, repoLog, "genre",
		categoryGenrePivot.ownerRef(), genreVideoPivot.relatedRef())}
}

func (r *genreRepo) SyncCategories(dbc dbctx.Context, genreID uuid.UUID, categoryIDs []uuid.UUID) error {
	return categoryGenrePivot.sync(r.tx(dbc), genreID, categoryIDs)
}
