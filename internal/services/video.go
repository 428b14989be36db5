package services

import (
	"context"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

type videoWriter struct {
	agg domainagg.VideoAggregate
}

func videoRelations(attrs map[string]any) domainagg.VideoRelations {
	return domainagg.VideoRelations{
		CategoryIDs: uuidsAttr(attrs, "categories_id"),
		GenreIDs:    uuidsAttr(attrs, "genres_id"),
	}
}

func (w videoWriter) Create(ctx context.Context, row *types.Video, attrs map[string]any) error {
	return w.agg.Create(ctx, row, videoRelations(attrs))
}

func (w videoWriter) Update(ctx context.Context, row *types.Video, attrs map[string]any) error {
	return w.agg.Update(ctx, row, videoRelations(attrs))
}

func NewVideoService(deps CatalogDeps) VideoService {
	agg := aggregates.NewVideoAggregate(aggregates.VideoAggregateDeps{
		BaseDeps: deps.Base,
		Videos:   deps.Videos,
	})
	return NewCRUDService[types.Video, *types.Video](ResourceConfig[types.Video]{
		Name:     "video",
		Rules:    VideoRules,
		New:      types.NewVideo,
		Preloads: []string{"Categories", "Genres"},
		Writer:   videoWriter{agg: agg},
	}, CRUDDeps[types.Video]{
		Base:     deps.Base,
		Store:    deps.Videos,
		Checker:  deps.checker(),
		Notifier: deps.Notifier,
	})
}
