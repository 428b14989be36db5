package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/data/repos/testutil"
	domainagg "github.com/yungbote/catalog-backend/internal/domain/aggregates"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
	"github.com/yungbote/catalog-backend/internal/pkg/pointers"
)

func TestCategoryRepo(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewCategoryRepo(db, testutil.Logger(t))

	c := types.NewCategory()
	c.Name = "Drama"
	if err := repo.Create(dbc, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == uuid.Nil {
		t.Fatal("Create should assign an id")
	}

	got, err := repo.GetByID(dbc, c.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Drama" || !got.IsActive || got.Description != nil {
		t.Fatalf("GetByID: %+v", got)
	}

	got.IsActive = false
	got.Description = pointers.Ptr("d")
	if err := repo.Update(dbc, got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	reloaded, err := repo.GetByID(dbc, c.ID)
	if err != nil {
		t.Fatalf("GetByID after Update: %v", err)
	}
	if reloaded.IsActive || reloaded.Description == nil || *reloaded.Description != "d" {
		t.Fatalf("Update should persist zero values: %+v", reloaded)
	}

	if rows, err := repo.List(dbc); err != nil || len(rows) != 1 {
		t.Fatalf("List: err=%v len=%d", err, len(rows))
	}

	if err := repo.SoftDeleteByID(dbc, c.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}
	if _, err := repo.GetByID(dbc, c.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("GetByID after delete: want not_found, got %v", err)
	}
	if rows, err := repo.List(dbc); err != nil || len(rows) != 0 {
		t.Fatalf("List after delete: err=%v len=%d", err, len(rows))
	}
	if err := repo.SoftDeleteByID(dbc, c.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("second SoftDeleteByID: want not_found, got %v", err)
	}

	if err := repo.RestoreByID(dbc, c.ID); err != nil {
		t.Fatalf("RestoreByID: %v", err)
	}
	if _, err := repo.GetByID(dbc, c.ID); err != nil {
		t.Fatalf("GetByID after restore: %v", err)
	}
	if err := repo.RestoreByID(dbc, c.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("RestoreByID on live row: want not_found, got %v", err)
	}

	cutoff := time.Now().Add(time.Minute)
	if purged, err := repo.PurgeDeletedBefore(dbc, []uuid.UUID{c.ID}, cutoff); err != nil || len(purged) != 0 {
		t.Fatalf("PurgeDeletedBefore on live row: purged=%v err=%v", purged, err)
	}
	if err := repo.SoftDeleteByID(dbc, c.ID); err != nil {
		t.Fatalf("SoftDeleteByID: %v", err)
	}
	if purged, err := repo.PurgeDeletedBefore(dbc, []uuid.UUID{c.ID}, cutoff); err != nil || len(purged) != 1 {
		t.Fatalf("PurgeDeletedBefore: purged=%v err=%v", purged, err)
	}
	if err := repo.RestoreByID(dbc, c.ID); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("RestoreByID after purge: want not_found, got %v", err)
	}
}

func TestCategoryRepoExistingIDsSkipsDeleted(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewCategoryRepo(db, testutil.Logger(t))

	live := testutil.SeedCategory(t, db, "live")
	gone := testutil.SeedCategory(t, db, "gone")
	testutil.SoftDelete(t, db, gone)

	ids, err := repo.ExistingIDs(dbc, []uuid.UUID{live.ID, gone.ID, uuid.New()})
	if err != nil {
		t.Fatalf("ExistingIDs: %v", err)
	}
	if len(ids) != 1 || ids[0] != live.ID {
		t.Fatalf("ExistingIDs: got=%v want=[%s]", ids, live.ID)
	}

	if empty, err := repo.ExistingIDs(dbc, nil); err != nil || len(empty) != 0 {
		t.Fatalf("ExistingIDs(nil): err=%v ids=%v", err, empty)
	}
}

func TestCategoryRepoUpdateMissingRow(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewCategoryRepo(db, testutil.Logger(t))

	ghost := types.NewCategory()
	ghost.ID = uuid.New()
	ghost.Name = "ghost"
	if err := repo.Update(dbc, ghost); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("Update missing: want not_found, got %v", err)
	}
	if _, err := repo.GetByID(dbc, uuid.Nil); !domainagg.IsCode(err, domainagg.CodeNotFound) {
		t.Fatalf("GetByID(nil): want not_found, got %v", err)
	}
}
