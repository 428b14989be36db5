package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

// AutoMigrate creates the catalog tables and binds the many-to-many relations
// to their explicit join models. It is dialect agnostic.
func AutoMigrate(db *gorm.DB) error {
	joins := []struct {
		model any
		field string
		join  any
	}{
		{&types.Genre{}, "Categories", &types.CategoryGenre{}},
		{&types.Video{}, "Categories", &types.CategoryVideo{}},
		{&types.Video{}, "Genres", &types.GenreVideo{}},
	}
	for _, j := range joins {
		if err := db.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return fmt.Errorf("setup join table %T.%s: %w", j.model, j.field, err)
		}
	}
	return db.AutoMigrate(
		&types.Category{},
		&types.Genre{},
		&types.CastMember{},
		&types.Video{},
		&types.CategoryGenre{},
		&types.CategoryVideo{},
		&types.GenreVideo{},
	)
}
