package testutil

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/aggregates"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
)

// ErrInjectedRollback is returned from the transaction body to force gorm to
// roll back when FailCommit is set on a DB-backed runner.
var ErrInjectedRollback = errors.New("injected rollback")

// InjectedTxRunner runs catalog writes in a real transaction when DB is set
// (or a plain dbctx otherwise) and lets tests fail the write at its edges.
type InjectedTxRunner struct {
	DB *gorm.DB

	FailBegin  error
	FailCommit error

	mu            sync.Mutex
	BeginCalls    int
	CommitCalls   int
	RollbackCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.count(&r.BeginCalls)
	if r.FailBegin != nil {
		return r.FailBegin
	}
	if fn == nil {
		r.count(&r.CommitCalls)
		return nil
	}

	var err error
	if r.DB == nil {
		err = fn(dbctx.Context{Ctx: ctx})
		if err == nil && r.FailCommit != nil {
			err = r.FailCommit
		}
	} else {
		err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := fn(dbctx.Context{Ctx: ctx, Tx: tx}); err != nil {
				return err
			}
			if r.FailCommit != nil {
				return ErrInjectedRollback
			}
			return nil
		})
		if errors.Is(err, ErrInjectedRollback) {
			err = r.FailCommit
		}
	}

	if err != nil {
		r.count(&r.RollbackCalls)
		return err
	}
	r.count(&r.CommitCalls)
	return nil
}

func (r *InjectedTxRunner) count(n *int) {
	r.mu.Lock()
	*n++
	r.mu.Unlock()
}
