package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	"github.com/yungbote/catalog-backend/internal/data/repos/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
	"github.com/yungbote/catalog-backend/internal/realtime"
	"github.com/yungbote/catalog-backend/internal/validation"
)

// Record is the pointer form of a catalog row that validated attributes can
// be filled onto.
type Record[T any] interface {
	*T
	catalog.Entity
	Fill(attrs map[string]any)
}

// Writer persists a filled row. attrs holds the full validated input so
// writers can pick up values that are not columns (relation id lists).
type Writer[T any] interface {
	Create(ctx context.Context, row *T, attrs map[string]any) error
	Update(ctx context.Context, row *T, attrs map[string]any) error
}

// CRUDService is the resource surface shared by every catalog entity.
type CRUDService[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Get(ctx context.Context, id uuid.UUID) (*T, error)
	Create(ctx context.Context, input map[string]any) (*T, error)
	Update(ctx context.Context, id uuid.UUID, input map[string]any) (*T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Restore(ctx context.Context, id uuid.UUID) (*T, error)
}

// ResourceConfig describes one catalog resource.
type ResourceConfig[T any] struct {
	Name     string
	Rules    validation.RuleSet
	New      func() *T
	Preloads []string
	// Writer defaults to a plain row write when nil.
	Writer Writer[T]
}

type CRUDDeps[T any] struct {
	Base     aggregates.BaseDeps
	Store    catalog.Store[T]
	Checker  validation.ExistenceChecker
	Notifier *CatalogNotifier
}

type crudService[T any, PT Record[T]] struct {
	cfg      ResourceConfig[T]
	log      *logger.Logger
	store    catalog.Store[T]
	entity   *aggregates.EntityWriter[T, PT]
	writer   Writer[T]
	checker  validation.ExistenceChecker
	notifier *CatalogNotifier
}

func NewCRUDService[T any, PT Record[T]](cfg ResourceConfig[T], deps CRUDDeps[T]) CRUDService[T] {
	if cfg.New == nil {
		cfg.New = func() *T { return new(T) }
	}
	s := &crudService[T, PT]{
		cfg:      cfg,
		log:      deps.Base.Log.With("service", cfg.Name+"Service"),
		store:    deps.Store,
		entity:   aggregates.NewEntityWriter[T, PT](deps.Base, deps.Store, cfg.Name),
		writer:   cfg.Writer,
		checker:  deps.Checker,
		notifier: deps.Notifier,
	}
	if s.writer == nil {
		s.writer = rowWriter[T, PT]{entity: s.entity}
	}
	return s
}

func (s *crudService[T, PT]) List(ctx context.Context) ([]*T, error) {
	rows, err := s.store.List(dbctx.Context{Ctx: ctx})
	if err != nil {
		return nil, aggregates.MapError(s.cfg.Name+".list", err)
	}
	return rows, nil
}

func (s *crudService[T, PT]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	row, err := s.store.GetByID(dbctx.Context{Ctx: ctx}, id, s.cfg.Preloads...)
	if err != nil {
		return nil, aggregates.MapError(s.cfg.Name+".get", err)
	}
	return row, nil
}

func (s *crudService[T, PT]) Create(ctx context.Context, input map[string]any) (*T, error) {
	attrs, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	row := s.cfg.New()
	PT(row).Fill(attrs)
	if err := s.writer.Create(ctx, row, attrs); err != nil {
		return nil, err
	}
	id := PT(row).GetID()
	s.notifier.Notify(ctx, s.cfg.Name, realtime.ActionCreated, id)
	return s.reload(ctx, id, row), nil
}

func (s *crudService[T, PT]) Update(ctx context.Context, id uuid.UUID, input map[string]any) (*T, error) {
	row, err := s.store.GetByID(dbctx.Context{Ctx: ctx}, id)
	if err != nil {
		return nil, aggregates.MapError(s.cfg.Name+".update", err)
	}
	attrs, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	PT(row).Fill(attrs)
	if err := s.writer.Update(ctx, row, attrs); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, s.cfg.Name, realtime.ActionUpdated, id)
	return s.reload(ctx, id, row), nil
}

func (s *crudService[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.entity.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.Notify(ctx, s.cfg.Name, realtime.ActionDeleted, id)
	return nil
}

func (s *crudService[T, PT]) Restore(ctx context.Context, id uuid.UUID) (*T, error) {
	if err := s.entity.Restore(ctx, id); err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, s.cfg.Name, realtime.ActionRestored, id)
	return s.Get(ctx, id)
}

// reload reads back a committed row with its relations. The write already
// succeeded, so a failed read falls back to the row as written.
func (s *crudService[T, PT]) reload(ctx context.Context, id uuid.UUID, written *T) *T {
	row, err := s.store.GetByID(dbctx.Context{Ctx: ctx}, id, s.cfg.Preloads...)
	if err != nil {
		s.log.Warn("reload after write failed", "id", id, "error", err)
		return written
	}
	return row
}

func (s *crudService[T, PT]) validate(ctx context.Context, input map[string]any) (map[string]any, error) {
	attrs, err := validation.Validate(ctx, s.cfg.Rules, input, s.checker)
	if err == nil {
		return attrs, nil
	}
	var verr *validation.Error
	if errors.As(err, &verr) {
		s.log.Debug("validation failed", "fields", verr.FieldNames())
		return nil, verr
	}
	s.log.Error("validation lookup failed", "error", err)
	return nil, aggregates.MapError(s.cfg.Name+".validate", err)
}

// rowWriter writes entities without relations.
type rowWriter[T any, PT Record[T]] struct {
	entity *aggregates.EntityWriter[T, PT]
}

func (w rowWriter[T, PT]) Create(ctx context.Context, row *T, _ map[string]any) error {
	return w.entity.Create(ctx, row)
}

func (w rowWriter[T, PT]) Update(ctx context.Context, row *T, _ map[string]any) error {
	return w.entity.Update(ctx, row)
}

// uuidsAttr returns the id list under key, or nil when the key is absent.
func uuidsAttr(attrs map[string]any, key string) []uuid.UUID {
	ids, ok := attrs[key].([]uuid.UUID)
	if !ok {
		return nil
	}
	return ids
}
