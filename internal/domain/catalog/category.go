package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;size:255;not null" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	IsActive    bool      `gorm:"column:is_active;not null" json:"is_active"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (Category) TableName() string { return "categories" }

// NewCategory returns a category carrying the column defaults.
func NewCategory() *Category {
	return &Category{IsActive: true}
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) GetID() uuid.UUID { return c.ID }

func (c *Category) Fill(attrs map[string]any) {
	if v, ok := stringAttr(attrs, "name"); ok {
		c.Name = v
	}
	if v, ok := nullableStringAttr(attrs, "description"); ok {
		c.Description = v
	}
	if v, ok := boolAttr(attrs, "is_active"); ok {
		c.IsActive = v
	}
}
