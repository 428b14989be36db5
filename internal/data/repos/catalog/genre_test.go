package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/catalog-backend/internal/data/repos/testutil"
	"github.com/yungbote/catalog-backend/internal/pkg/dbctx"
)

func TestGenreRepoSyncCategories(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewGenreRepo(db, testutil.Logger(t))

	genre := testutil.SeedGenre(t, db, "Action")
	c1 := testutil.SeedCategory(t, db, "c1")
	c2 := testutil.SeedCategory(t, db, "c2")
	c3 := testutil.SeedCategory(t, db, "c3")

	if err := repo.SyncCategories(dbc, genre.ID, []uuid.UUID{c1.ID, c2.ID, c3.ID, c1.ID}); err != nil {
		t.Fatalf("SyncCategories: %v", err)
	}
	assertIDs(t, testutil.GenreCategoryIDs(t, db, genre.ID), c1.ID, c2.ID, c3.ID)

	if err := repo.SyncCategories(dbc, genre.ID, []uuid.UUID{c2.ID, c3.ID}); err != nil {
		t.Fatalf("SyncCategories shrink: %v", err)
	}
	assertIDs(t, testutil.GenreCategoryIDs(t, db, genre.ID), c2.ID, c3.ID)

	if err := repo.SyncCategories(dbc, genre.ID, nil); err != nil {
		t.Fatalf("SyncCategories empty: %v", err)
	}
	assertIDs(t, testutil.GenreCategoryIDs(t, db, genre.ID))

	if err := repo.SyncCategories(dbc, uuid.Nil, []uuid.UUID{c1.ID}); err == nil {
		t.Fatal("SyncCategories with nil owner should fail")
	}
}

func TestGenreRepoGetByIDPreloadsCategories(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	repo := NewGenreRepo(db, testutil.Logger(t))

	genre := testutil.SeedGenre(t, db, "Action")
	live := testutil.SeedCategory(t, db, "live")
	gone := testutil.SeedCategory(t, db, "gone")
	if err := repo.SyncCategories(dbc, genre.ID, []uuid.UUID{live.ID, gone.ID}); err != nil {
		t.Fatalf("SyncCategories: %v", err)
	}
	testutil.SoftDelete(t, db, gone)

	got, err := repo.GetByID(dbc, genre.ID, "Categories")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Categories) != 1 || got.Categories[0].ID != live.ID {
		t.Fatalf("preloaded categories: %+v", got.Categories)
	}
}

func assertIDs(t *testing.T, got []uuid.UUID, want ...uuid.UUID) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids: got=%v want=%v", got, want)
	}
	set := make(map[uuid.UUID]bool, len(got))
	for _, id := range got {
		set[id] = true
	}
	for _, id := range want {
		if !set[id] {
			t.Fatalf("ids: missing %s in %v", id, got)
		}
	}
}

func TestGenreRepoPurgeRemovesJoinRows(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	genres := NewGenreRepo(db, testutil.Logger(t))
	videos := NewVideoRepo(db, testutil.Logger(t))

	genre := testutil.SeedGenre(t, db, "Action")
	keep := testutil.SeedGenre(t, db, "Drama")
	c := testutil.SeedCategory(t, db, "c")
	v := testutil.SeedVideo(t, db, "v")
	if err := genres.SyncCategories(dbc, genre.ID, []uuid.UUID{c.ID}); err != nil {
		t.Fatalf("SyncCategories: %v", err)
	}
	if err := videos.SyncGenres(dbc, v.ID, []uuid.UUID{genre.ID, keep.ID}); err != nil {
		t.Fatalf("SyncGenres: %v", err)
	}

	testutil.SoftDelete(t, db, genre)
	cutoff := time.Now().Add(time.Minute)
	ids, err := genres.DeletedIDsBefore(dbc, cutoff)
	if err != nil {
		t.Fatalf("DeletedIDsBefore: %v", err)
	}
	assertIDs(t, ids, genre.ID)
	if early, _ := genres.DeletedIDsBefore(dbc, time.Now().Add(-time.Hour)); len(early) != 0 {
		t.Fatalf("DeletedIDsBefore past cutoff: got=%v", early)
	}

	purged, err := genres.PurgeDeletedBefore(dbc, ids, cutoff)
	if err != nil {
		t.Fatalf("PurgeDeletedBefore: %v", err)
	}
	assertIDs(t, purged, genre.ID)
	assertIDs(t, testutil.GenreCategoryIDs(t, db, genre.ID))
	assertIDs(t, testutil.VideoGenreIDs(t, db, v.ID), keep.ID)
	if left, _ := genres.DeletedIDsBefore(dbc, cutoff); len(left) != 0 {
		t.Fatalf("purged row still listed: %v", left)
	}
}

func TestGenreRepoPurgeSkipsRowsRestoredAfterListing(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	genres := NewGenreRepo(db, testutil.Logger(t))
	videos := NewVideoRepo(db, testutil.Logger(t))

	restored := testutil.SeedGenre(t, db, "Action")
	gone := testutil.SeedGenre(t, db, "Drama")
	c := testutil.SeedCategory(t, db, "c")
	v := testutil.SeedVideo(t, db, "v")
	if err := genres.SyncCategories(dbc, restored.ID, []uuid.UUID{c.ID}); err != nil {
		t.Fatalf("SyncCategories: %v", err)
	}
	if err := videos.SyncGenres(dbc, v.ID, []uuid.UUID{restored.ID, gone.ID}); err != nil {
		t.Fatalf("SyncGenres: %v", err)
	}
	testutil.SoftDelete(t, db, restored)
	testutil.SoftDelete(t, db, gone)

	cutoff := time.Now().Add(time.Minute)
	ids, err := genres.DeletedIDsBefore(dbc, cutoff)
	if err != nil {
		t.Fatalf("DeletedIDsBefore: %v", err)
	}
	assertIDs(t, ids, restored.ID, gone.ID)

	if err := genres.RestoreByID(dbc, restored.ID); err != nil {
		t.Fatalf("RestoreByID: %v", err)
	}
	purged, err := genres.PurgeDeletedBefore(dbc, ids, cutoff)
	if err != nil {
		t.Fatalf("PurgeDeletedBefore: %v", err)
	}
	assertIDs(t, purged, gone.ID)

	if _, err := genres.GetByID(dbc, restored.ID); err != nil {
		t.Fatalf("restored genre was purged: %v", err)
	}
	assertIDs(t, testutil.GenreCategoryIDs(t, db, restored.ID), c.ID)
	assertIDs(t, testutil.VideoGenreIDs(t, db, v.ID), restored.ID)
}

func TestGenreRepoPurgeSkipsRowsDeletedAfterCutoff(t *testing.T) {
	db := testutil.DB(t)
	dbc := dbctx.Context{Ctx: context.Background()}
	genres := NewGenreRepo(db, testutil.Logger(t))

	genre := testutil.SeedGenre(t, db, "Action")
	testutil.SoftDelete(t, db, genre)

	purged, err := genres.PurgeDeletedBefore(dbc, []uuid.UUID{genre.ID}, time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("PurgeDeletedBefore: %v", err)
	}
	if len(purged) != 0 {
		t.Fatalf("purged a row deleted after the cutoff: %v", purged)
	}
	if err := genres.RestoreByID(dbc, genre.ID); err != nil {
		t.Fatalf("row should still exist: %v", err)
	}
}
