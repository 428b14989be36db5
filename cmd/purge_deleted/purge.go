package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/logger"
)

// defaultResources purges owners before the rows they reference.
var defaultResources = []string{"videos", "genres", "categories", "cast_members"}

// purger is the slice of a catalog repo this command needs.
type purger interface {
	DeletedIDsBefore(dbc dbctx.Context, cutoff time.Time) ([]uuid.UUID, error)
	PurgeDeletedBefore(dbc dbctx.Context, ids []uuid.UUID, cutoff time.Time) ([]uuid.UUID, error)
}

type purgeOptions struct {
	Resources []string
	Cutoff    time.Time
	DryRun    bool
}

// purgeResources reports or removes the soft-deleted rows of each selected
// resource. A failing resource does not stop the others; all failures are
// returned together.
func purgeResources(ctx context.Context, log *logger.Logger, out io.Writer, repos map[string]purger, opts purgeOptions) error {
	names := opts.Resources
	if len(names) == 0 {
		names = defaultResources
	}
	dbc := dbctx.Context{Ctx: ctx}
	var errs []error
	for _, name := range names {
		repo, ok := repos[name]
		if !ok {
			errs = append(errs, fmt.Errorf("unknown resource %q", name))
			continue
		}
		ids, err := repo.DeletedIDsBefore(dbc, opts.Cutoff)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: list deleted: %w", name, err))
			continue
		}
		if opts.DryRun {
			fmt.Fprintf(out, "[dry-run] %s: %d rows deleted before %s\n", name, len(ids), opts.Cutoff.Format(time.RFC3339))
			writeIDs(out, ids)
			continue
		}
		purged, err := repo.PurgeDeletedBefore(dbc, ids, opts.Cutoff)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: purge: %w", name, err))
			continue
		}
		fmt.Fprintf(out, "%s: purged %d of %d rows\n", name, len(purged), len(ids))
		writeIDs(out, purged)
		log.Info("purged soft-deleted rows", "resource", name, "count", len(purged), "listed", len(ids))
	}
	return errors.Join(errs...)
}

func writeIDs(out io.Writer, ids []uuid.UUID) {
	for _, id := range ids {
		fmt.Fprintf(out, "  %s\n", id)
	}
}
