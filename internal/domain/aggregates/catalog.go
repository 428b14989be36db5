package aggregates

import (
	"context"

	"github.com/google/uuid"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

var GenreAggregateContract = Contract{
	Name:             "Catalog.GenreAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns the genre row and its category_genre rows in one transaction.",
}

var VideoAggregateContract = Contract{
	Name:             "Catalog.VideoAggregate",
	WriteTxOwnership: WriteTxOwnedByAggregate,
	ReadPolicy:       ReadPolicyInvariantScoped,
	Notes:            "Owns the video row with its category_video and genre_video rows in one transaction.",
}

// GenreAggregate writes a genre together with its category links.
//
// A nil categoryIDs leaves the links untouched; an empty slice clears them.
// Failures return *Error with CodeNotFound, CodeConflict,
// CodePreconditionFailed, CodeRetryable or CodeInternal.
type GenreAggregate interface {
	Aggregate

	Create(ctx context.Context, genre *types.Genre, categoryIDs []uuid.UUID) error
	Update(ctx context.Context, genre *types.Genre, categoryIDs []uuid.UUID) error
}

// VideoRelations carries the relation id sets of a video write. Nil fields are
// not synced.
type VideoRelations struct {
	CategoryIDs []uuid.UUID
	GenreIDs    []uuid.UUID
}

// VideoAggregate writes a video with its category and genre links. Either
// every link set is applied or none is.
type VideoAggregate interface {
	Aggregate

	Create(ctx context.Context, video *types.Video, rel VideoRelations) error
	Update(ctx context.Context, video *types.Video, rel VideoRelations) error
}
