package catalog

import "github.com/google/uuid"

// Join rows of the many-to-many relations. Each holds only the two keys.

type CategoryGenre struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	GenreID    uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"genre_id"`
}

func (CategoryGenre) TableName() string { return "category_genre" }

type CategoryVideo struct {
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey" json:"category_id"`
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"video_id"`
}

func (CategoryVideo) TableName() string { return "category_video" }

type GenreVideo struct {
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey" json:"genre_id"`
	VideoID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"video_id"`
}

func (GenreVideo) TableName() string { return "genre_video" }
