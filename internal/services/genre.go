package services

import (
	"context"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

type genreWriter struct {
	agg domainagg.GenreAggregate
}

func (w genreWriter) Create(ctx context.Context, row *types.Genre, attrs map[string]any) error {
	return w.agg.Create(ctx, row, uuidsAttr(attrs, "categories_id"))
}

func (w genreWriter) Update(ctx context.Context, row *types.Genre, attrs map[string]any) error {
	return w.agg.Update(ctx, row, uuidsAttr(attrs, "categories_id"))
}

func NewGenreService(deps CatalogDeps) GenreService {
	agg := aggregates.NewGenreAggregate(aggregates.GenreAggregateDeps{
		BaseDeps: deps.Base,
		Genres:   deps.Genres,
	})
	return NewCRUDService[types.Genre, *types.Genre](ResourceConfig[types.Genre]{
		Name:     "genre",
		Rules:    GenreRules,
		New:      types.NewGenre,
		Preloads: []string{"Categories"},
		Writer:   genreWriter{agg: agg},
	}, CRUDDeps[types.Genre]{
		Base:     deps.Base,
		Store:    deps.Genres,
		Checker:  deps.checker(),
		Notifier: deps.Notifier,
	})
}
