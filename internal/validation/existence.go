package validation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
)

// ExistenceChecker reports which ids reference live rows of table.
type ExistenceChecker interface {
	ExistingIDs(ctx context.Context, table string, ids []uuid.UUID) ([]uuid.UUID, error)
}

// IDSource is satisfied by every catalog repo.
type IDSource interface {
	ExistingIDs(dbc dbctx.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

// Tables resolves exists=<table> rules against repos keyed by table name.
type Tables map[string]IDSource

func (t Tables) ExistingIDs(ctx context.Context, table string, ids []uuid.UUID) ([]uuid.UUID, error) {
	src, ok := t[table]
	if !ok || src == nil {
		return nil, fmt.Errorf("no id source for table %q", table)
	}
	return src.ExistingIDs(dbctx.Context{Ctx: ctx}, ids)
}

func missingIDs(ctx context.Context, checker ExistenceChecker, table string, ids []uuid.UUID) ([]uuid.UUID, error) {
	found, err := checker.ExistingIDs(ctx, table, ids)
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		seen[id] = struct{}{}
	}
	var missing []uuid.UUID
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
