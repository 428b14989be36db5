package catalog

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type VideoRepo interface {
	Store[types.Video]
	SyncCategories(dbc dbctx.Context, videoID uuid.UUID, categoryIDs []uuid.UUID) error
	SyncGenres(dbc dbctx.Context, videoID uuid.UUID, genreIDs []uuid.UUID) error
}

type videoRepo struct {
	*gormStore[types.Video, *types.Video]
}

var (
	categoryVideoPivot = pivot{
		table:     types.CategoryVideo{}.TableName(),
		ownerKey:  "video_id",
		relateKey: "category_id",
		row: func(owner, related uuid.UUID) any {
			return &types.CategoryVideo{VideoID: owner, CategoryID: related}
		},
	}
	genreVideoPivot = pivot{
		table:     types.GenreVideo{}.TableName(),
		ownerKey:  "video_id",
		relateKey: "genre_id",
		row: func(owner, related uuid.UUID) any {
			return &types.GenreVideo{VideoID: owner, GenreID: related}
		},
	}
)

func NewVideoRepo(db *gorm.DB, baseLog *logger.Logger) VideoRepo {
	repoLog := baseLog.With("repo", "VideoRepo")
	return &videoRepo{gormStore: newGormStore[types.Video, *types.Video](db, repoLog, "video",
		categoryVideoPivot.ownerRef(), genreVideoPivot.ownerRef())}
}

func (r *videoRepo) SyncCategories(dbc dbctx.Context, videoID uuid.UUID, categoryIDs []uuid.UUID) error {
	return categoryVideoPivot.sync(r.tx(dbc), videoID, categoryIDs)
}

func (r *videoRepo) SyncGenres(dbc dbctx.Context, videoID uuid.UUID, genreIDs []uuid.UUID) error {
	return genreVideoPivot.sync(r.tx(dbc), videoID, genreIDs)
}
