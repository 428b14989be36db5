package aggregates

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/data/repos"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

type GenreAggregateDeps struct {
	BaseDeps
	Genres repos.GenreRepo
}

type genreAggregate struct {
	writer *EntityWriter[types.Genre, *types.Genre]
	genres repos.GenreRepo
}

func NewGenreAggregate(deps GenreAggregateDeps) domainagg.GenreAggregate {
	return &genreAggregate{
		writer: NewEntityWriter[types.Genre, *types.Genre](deps.BaseDeps, deps.Genres, "genre"),
		genres: deps.Genres,
	}
}

func (a *genreAggregate) Contract() domainagg.Contract {
	return domainagg.GenreAggregateContract
}

func (a *genreAggregate) Create(ctx context.Context, genre *types.Genre, categoryIDs []uuid.UUID) error {
	return a.writer.Create(ctx, genre, a.syncs(categoryIDs)...)
}

func (a *genreAggregate) Update(ctx context.Context, genre *types.Genre, categoryIDs []uuid.UUID) error {
	return a.writer.Update(ctx, genre, a.syncs(categoryIDs)...)
}

// A nil id list leaves the relation untouched; an empty one clears it.
func (a *genreAggregate) syncs(categoryIDs []uuid.UUID) []RelationSync {
	if categoryIDs == nil {
		return nil
	}
	return []RelationSync{{Name: "categories", IDs: categoryIDs, Apply: a.genres.SyncCategories}}
}
