package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Genre struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"column:name;size:255;not null" json:"name"`
	IsActive bool      `gorm:"column:is_active;not null" json:"is_active"`

	Categories []Category `gorm:"many2many:category_genre;joinForeignKey:GenreID;joinReferences:CategoryID" json:"categories,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Genre) TableName() string { return "genres" }

func NewGenre() *Genre {
	return &Genre{IsActive: true}
}

func (g *Genre) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (g *Genre) GetID() uuid.UUID { return g.ID }

func (g *Genre) Fill(attrs map[string]any) {
	if v, ok := stringAttr(attrs, "name"); ok {
		g.Name = v
	}
	if v, ok := boolAttr(attrs, "is_active"); ok {
		g.IsActive = v
	}
}
