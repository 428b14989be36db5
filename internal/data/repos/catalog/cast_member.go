package catalog

import (
	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type CastMemberRepo interface {
	Store[types.CastMember]
}

type castMemberRepo struct {
	*gormStore[types.CastMember, *types.CastMember]
}

func NewCastMemberRepo(db *gorm.DB, baseLog *logger.Logger) CastMemberRepo {
	repoLog := baseLog.With("repo", "CastMemberRepo")
	return &castMemberRepo{gormStore: newGormStore[types.CastMember, *types.CastMember](db, repoLog, "cast_member")}
}
