package aggregates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos/catalog"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

type BaseDeps struct {
	DB     *gorm.DB
	Log    *logger.Logger
	Runner TxRunner
	Hooks  Hooks
}

func (d BaseDeps) withDefaults() BaseDeps {
	if d.Runner == nil {
		d.Runner = NewGormTxRunner(d.DB)
	}
	if d.Hooks == nil {
		d.Hooks = noopHooks{}
	}
	return d
}

func executeWrite(ctx context.Context, deps BaseDeps, op string, fn func(dbc dbctx.Context) error) error {
	start := time.Now()
	deps = deps.withDefaults()
	op = strings.TrimSpace(op)
	if op == "" {
		op = "aggregate.write"
	}
	mapped := MapError(op, deps.Runner.InTx(ctx, fn))

	status := "success"
	if mapped != nil {
		status = string(domainagg.CodeOf(mapped))
		switch domainagg.CodeOf(mapped) {
		case domainagg.CodeConflict:
			deps.Hooks.IncConflict(op)
		case domainagg.CodeRetryable:
			deps.Hooks.IncRetry(op)
		}
		if deps.Log != nil {
			if domainagg.IsCode(mapped, domainagg.CodeNotFound) {
				deps.Log.Debug("write rolled back", "op", op, "status", status, "error", mapped)
			} else {
				deps.Log.Warn("write rolled back", "op", op, "status", status, "error", mapped)
			}
		}
	}
	deps.Hooks.ObserveOperation(op, status, time.Since(start))
	return mapped
}

// RelationSync replaces one join table's rows for the written entity.
type RelationSync struct {
	Name  string
	IDs   []uuid.UUID
	Apply func(dbc dbctx.Context, ownerID uuid.UUID, ids []uuid.UUID) error
}

// EntityWriter writes one catalog row and, in the same transaction, every
// relation sync passed along. Any failure rolls the whole write back.
type EntityWriter[T any, PT interface {
	*T
	catalog.Entity
}] struct {
	deps     BaseDeps
	store    catalog.Store[T]
	resource string
}

func NewEntityWriter[T any, PT interface {
	*T
	catalog.Entity
}](deps BaseDeps, store catalog.Store[T], resource string) *EntityWriter[T, PT] {
	if deps.Log != nil {
		deps.Log = deps.Log.With("aggregate", resource)
	}
	return &EntityWriter[T, PT]{deps: deps, store: store, resource: resource}
}

func (w *EntityWriter[T, PT]) Create(ctx context.Context, row *T, syncs ...RelationSync) error {
	return executeWrite(ctx, w.deps, w.resource+".create", func(dbc dbctx.Context) error {
		if err := w.store.Create(dbc, row); err != nil {
			return err
		}
		return applySyncs(dbc, PT(row).GetID(), syncs)
	})
}

func (w *EntityWriter[T, PT]) Update(ctx context.Context, row *T, syncs ...RelationSync) error {
	return executeWrite(ctx, w.deps, w.resource+".update", func(dbc dbctx.Context) error {
		if err := w.store.Update(dbc, row); err != nil {
			return err
		}
		return applySyncs(dbc, PT(row).GetID(), syncs)
	})
}

func (w *EntityWriter[T, PT]) Delete(ctx context.Context, id uuid.UUID) error {
	return executeWrite(ctx, w.deps, w.resource+".delete", func(dbc dbctx.Context) error {
		return w.store.SoftDeleteByID(dbc, id)
	})
}

func (w *EntityWriter[T, PT]) Restore(ctx context.Context, id uuid.UUID) error {
	return executeWrite(ctx, w.deps, w.resource+".restore", func(dbc dbctx.Context) error {
		return w.store.RestoreByID(dbc, id)
	})
}

func applySyncs(dbc dbctx.Context, ownerID uuid.UUID, syncs []RelationSync) error {
	for _, s := range syncs {
		if s.Apply == nil {
			continue
		}
		if err := s.Apply(dbc, ownerID, s.IDs); err != nil {
			return fmt.Errorf("sync %s: %w", s.Name, err)
		}
	}
	return nil
}
