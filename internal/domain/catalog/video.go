package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ratings is the age-rating list accepted for Video.Rating.
var Ratings = []string{"L", "10", "12", "14", "16", "18"}

type Video struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	Description  string    `gorm:"column:description;type:text;not null" json:"description"`
	YearLaunched int       `gorm:"column:year_launched;type:smallint;not null" json:"year_launched"`
	Opened       bool      `gorm:"column:opened;not null" json:"opened"`
	Rating       string    `gorm:"column:rating;size:3;not null" json:"rating"`
	Duration     int       `gorm:"column:duration;not null" json:"duration"`

	Categories []Category `gorm:"many2many:category_video;joinForeignKey:VideoID;joinReferences:CategoryID" json:"categories,omitempty"`
	Genres     []Genre    `gorm:"many2many:genre_video;joinForeignKey:VideoID;joinReferences:GenreID" json:"genres,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Video) TableName() string { return "videos" }

func NewVideo() *Video { return &Video{} }

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (v *Video) GetID() uuid.UUID { return v.ID }

func (v *Video) Fill(attrs map[string]any) {
	if s, ok := stringAttr(attrs, "title"); ok {
		v.Title = s
	}
	if s, ok := stringAttr(attrs, "description"); ok {
		v.Description = s
	}
	if n, ok := intAttr(attrs, "year_launched"); ok {
		v.YearLaunched = n
	}
	if b, ok := boolAttr(attrs, "opened"); ok {
		v.Opened = b
	}
	if s, ok := stringAttr(attrs, "rating"); ok {
		v.Rating = s
	}
	if n, ok := intAttr(attrs, "duration"); ok {
		v.Duration = n
	}
}
