package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

// Entity is the row contract shared by every catalog table.
type Entity interface {
	TableName() string
	GetID() uuid.UUID
}

// Store is the CRUD surface of one soft-deletable catalog table.
type Store[T any] interface {
	List(dbc dbctx.Context) ([]*T, error)
	GetByID(dbc dbctx.Context, id uuid.UUID, preloads ...string) (*T, error)
	ExistingIDs(dbc dbctx.Context, ids []uuid.UUID) ([]uuid.UUID, error)
	Create(dbc dbctx.Context, row *T) error
	Update(dbc dbctx.Context, row *T) error
	SoftDeleteByID(dbc dbctx.Context, id uuid.UUID) error
	RestoreByID(dbc dbctx.Context, id uuid.UUID) error
	// DeletedIDsBefore lists rows soft-deleted before cutoff.
	DeletedIDsBefore(dbc dbctx.Context, cutoff time.Time) ([]uuid.UUID, error)
	// PurgeDeletedBefore hard-deletes those of ids that are still soft-deleted
	// before cutoff, join table pairs included, and returns the purged ids.
	PurgeDeletedBefore(dbc dbctx.Context, ids []uuid.UUID, cutoff time.Time) ([]uuid.UUID, error)
}

// joinRef is a join table column that references this store's ids.
type joinRef struct {
	table  string
	column string
}

type gormStore[T any, PT interface {
	*T
	Entity
}] struct {
	db       *gorm.DB
	log      *logger.Logger
	resource string
	joins    []joinRef
}

func newGormStore[T any, PT interface {
	*T
	Entity
}](db *gorm.DB, log *logger.Logger, resource string, joins ...joinRef) *gormStore[T, PT] {
	return &gormStore[T, PT]{db: db, log: log, resource: resource, joins: joins}
}

func (s *gormStore[T, PT]) tx(dbc dbctx.Context) *gorm.DB {
	transaction := dbc.Tx
	if transaction == nil {
		transaction = s.db
	}
	return transaction.WithContext(dbc.Context())
}

func (s *gormStore[T, PT]) List(dbc dbctx.Context) ([]*T, error) {
	var out []*T
	if err := s.tx(dbc).Order("created_at ASC").Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore[T, PT]) GetByID(dbc dbctx.Context, id uuid.UUID, preloads ...string) (*T, error) {
	if id == uuid.Nil {
		return nil, domainagg.NotFound(s.resource+".get", s.resource, id.String())
	}
	q := s.tx(dbc)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	var row T
	err := q.Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domainagg.NotFound(s.resource+".get", s.resource, id.String())
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ExistingIDs returns the subset of ids that reference live rows.
func (s *gormStore[T, PT]) ExistingIDs(dbc dbctx.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	if len(ids) == 0 {
		return out, nil
	}
	var model T
	if err := s.tx(dbc).Model(&model).Where("id IN ?", ids).Pluck("id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *gormStore[T, PT]) Create(dbc dbctx.Context, row *T) error {
	if row == nil {
		return nil
	}
	return s.tx(dbc).Create(row).Error
}

// Update writes every column of a live row, zero values included.
func (s *gormStore[T, PT]) Update(dbc dbctx.Context, row *T) error {
	if row == nil {
		return nil
	}
	res := s.tx(dbc).Model(row).
		Select("*").
		Omit(clause.Associations, "id", "created_at", "deleted_at").
		Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainagg.NotFound(s.resource+".update", s.resource, PT(row).GetID().String())
	}
	return nil
}

func (s *gormStore[T, PT]) SoftDeleteByID(dbc dbctx.Context, id uuid.UUID) error {
	var model T
	res := s.tx(dbc).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainagg.NotFound(s.resource+".delete", s.resource, id.String())
	}
	return nil
}

func (s *gormStore[T, PT]) RestoreByID(dbc dbctx.Context, id uuid.UUID) error {
	var model T
	res := s.tx(dbc).Unscoped().Model(&model).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainagg.NotFound(s.resource+".restore", s.resource, id.String())
	}
	return nil
}

func (s *gormStore[T, PT]) DeletedIDsBefore(dbc dbctx.Context, cutoff time.Time) ([]uuid.UUID, error) {
	out := []uuid.UUID{}
	var model T
	if err := s.tx(dbc).Unscoped().Model(&model).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("deleted_at ASC").
		Pluck("id", &out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// PurgeDeletedBefore re-reads the candidates under a row lock so that a row
// restored (or deleted again) after it was listed is left alone.
func (s *gormStore[T, PT]) PurgeDeletedBefore(dbc dbctx.Context, ids []uuid.UUID, cutoff time.Time) ([]uuid.UUID, error) {
	purged := []uuid.UUID{}
	if len(ids) == 0 {
		return purged, nil
	}
	err := s.tx(dbc).Transaction(func(tx *gorm.DB) error {
		var model T
		q := tx.Unscoped().Model(&model).
			Where("id IN ? AND deleted_at IS NOT NULL AND deleted_at < ?", ids, cutoff)
		if tx.Dialector.Name() == "postgres" {
			q = q.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var doomed []uuid.UUID
		if err := q.Pluck("id", &doomed).Error; err != nil {
			return fmt.Errorf("lock %s rows: %w", s.resource, err)
		}
		if len(doomed) == 0 {
			return nil
		}
		for _, j := range s.joins {
			if err := tx.Exec("DELETE FROM "+j.table+" WHERE "+j.column+" IN ?", doomed).Error; err != nil {
				return fmt.Errorf("purge %s: %w", j.table, err)
			}
		}
		res := tx.Unscoped().
			Where("id IN ? AND deleted_at IS NOT NULL AND deleted_at < ?", doomed, cutoff).
			Delete(&model)
		if res.Error != nil {
			return res.Error
		}
		purged = doomed
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(purged) < len(ids) {
		s.log.Info("purge skipped rows no longer deleted", "resource", s.resource, "requested", len(ids), "purged", len(purged))
	}
	return purged, nil
}
