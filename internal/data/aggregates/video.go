package aggregates

import (
	"context"

	"github.com/yungbote/catalog-backend/internal/data/repos"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

type VideoAggregateDeps struct {
	BaseDeps
	Videos repos.VideoRepo
}

type videoAggregate struct {
	writer *EntityWriter[types.Video, *types.Video]
	videos repos.VideoRepo
}

func NewVideoAggregate(deps VideoAggregateDeps) domainagg.VideoAggregate {
	return &videoAggregate{
		writer: NewEntityWriter[types.Video, *types.Video](deps.BaseDeps, deps.Videos, "video"),
		videos: deps.Videos,
	}
}

func (a *videoAggregate) Contract() domainagg.Contract {
	return domainagg.VideoAggregateContract
}

func (a *videoAggregate) Create(ctx context.Context, video *types.Video, rel domainagg.VideoRelations) error {
	return a.writer.Create(ctx, video, a.syncs(rel)...)
}

func (a *videoAggregate) Update(ctx context.Context, video *types.Video, rel domainagg.VideoRelations) error {
	return a.writer.Update(ctx, video, a.syncs(rel)...)
}

func (a *videoAggregate) syncs(rel domainagg.VideoRelations) []RelationSync {
	var out []RelationSync
	if rel.CategoryIDs != nil {
		out = append(out, RelationSync{Name: "categories", IDs: rel.CategoryIDs, Apply: a.videos.SyncCategories})
	}
	if rel.GenreIDs != nil {
		out = append(out, RelationSync{Name: "genres", IDs: rel.GenreIDs, Apply: a.videos.SyncGenres})
	}
	return out
}
