package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CastMemberType int16

const (
	CastMemberDirector CastMemberType = 1
	CastMemberActor    CastMemberType = 2
)

// CastMemberTypes lists the accepted values of CastMember.Type.
var CastMemberTypes = []CastMemberType{CastMemberDirector, CastMemberActor}

type CastMember struct {
	ID   uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name string         `gorm:"column:name;size:255;not null" json:"name"`
	Type CastMemberType `gorm:"column:type;type:smallint;not null" json:"type"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

func (CastMember) TableName() string { return "cast_members" }

func NewCastMember() *CastMember { return &CastMember{} }

func (m *CastMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *CastMember) GetID() uuid.UUID { return m.ID }

func (m *CastMember) Fill(attrs map[string]any) {
	if v, ok := stringAttr(attrs, "name"); ok {
		m.Name = v
	}
	if v, ok := intAttr(attrs, "type"); ok {
		m.Type = CastMemberType(v)
	}
}
