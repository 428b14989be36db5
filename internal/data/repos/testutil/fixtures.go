package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

func SeedCategory(tb testing.TB, db *gorm.DB, name string) *types.Category {
	tb.Helper()
	c := types.NewCategory()
	c.Name = name
	if err := db.Create(c).Error; err != nil {
		tb.Fatalf("seed category: %v", err)
	}
	return c
}

func SeedGenre(tb testing.TB, db *gorm.DB, name string) *types.Genre {
	tb.Helper()
	g := types.NewGenre()
	g.Name = name
	if err := db.Omit("Categories").Create(g).Error; err != nil {
		tb.Fatalf("seed genre: %v", err)
	}
	return g
}

func SeedCastMember(tb testing.TB, db *gorm.DB, name string, kind types.CastMemberType) *types.CastMember {
	tb.Helper()
	m := types.NewCastMember()
	m.Name = name
	m.Type = kind
	if err := db.Create(m).Error; err != nil {
		tb.Fatalf("seed cast member: %v", err)
	}
	return m
}

func SeedVideo(tb testing.TB, db *gorm.DB, title string) *types.Video {
	tb.Helper()
	v := types.NewVideo()
	v.Title = title
	v.Description = "description"
	v.YearLaunched = 2010
	v.Rating = types.Ratings[0]
	v.Duration = 90
	if err := db.Omit("Categories", "Genres").Create(v).Error; err != nil {
		tb.Fatalf("seed video: %v", err)
	}
	return v
}

// SoftDelete marks row deleted through gorm's soft-delete path.
func SoftDelete(tb testing.TB, db *gorm.DB, row any) {
	tb.Helper()
	if err := db.Delete(row).Error; err != nil {
		tb.Fatalf("soft delete: %v", err)
	}
}

// RelatedIDs reads the related ids paired with owner in a join table.
func RelatedIDs(tb testing.TB, db *gorm.DB, table, ownerKey, relatedKey string, owner uuid.UUID) []uuid.UUID {
	tb.Helper()
	out := []uuid.UUID{}
	if err := db.Table(table).Where(ownerKey+" = ?", owner).Order(relatedKey).Pluck(relatedKey, &out).Error; err != nil {
		tb.Fatalf("read %s: %v", table, err)
	}
	return out
}

func GenreCategoryIDs(tb testing.TB, db *gorm.DB, genreID uuid.UUID) []uuid.UUID {
	tb.Helper()
	return RelatedIDs(tb, db, types.CategoryGenre{}.TableName(), "genre_id", "category_id", genreID)
}

func VideoCategoryIDs(tb testing.TB, db *gorm.DB, videoID uuid.UUID) []uuid.UUID {
	tb.Helper()
	return RelatedIDs(tb, db, types.CategoryVideo{}.TableName(), "video_id", "category_id", videoID)
}

func VideoGenreIDs(tb testing.TB, db *gorm.DB, videoID uuid.UUID) []uuid.UUID {
	tb.Helper()
	return RelatedIDs(tb, db, types.GenreVideo{}.TableName(), "video_id", "genre_id", videoID)
}
