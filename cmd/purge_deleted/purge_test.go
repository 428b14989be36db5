package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/catalog-backend/internal/data/repos"
	"github.com/yungbote/catalog-backend/internal/data/repos/testutil"
	types "github.com/yungbote/catalog-backend/internal/domain/catalog"
)

type purgeFixture struct {
	db    *gorm.DB
	repos map[string]purger
}

func newPurgeFixture(t *testing.T) purgeFixture {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return purgeFixture{
		db: db,
		repos: map[string]purger{
			"categories":   repos.NewCategoryRepo(db, log),
			"genres":       repos.NewGenreRepo(db, log),
			"cast_members": repos.NewCastMemberRepo(db, log),
			"videos":       repos.NewVideoRepo(db, log),
		},
	}
}

func countAll(t *testing.T, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	if err := db.Unscoped().Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestPurgeDryRunListsIDsAndKeepsRows(t *testing.T) {
	f := newPurgeFixture(t)
	c := testutil.SeedCategory(t, f.db, "c")
	testutil.SoftDelete(t, f.db, c)

	var out bytes.Buffer
	err := purgeResources(context.Background(), testutil.Logger(t), &out, f.repos, purgeOptions{
		Resources: []string{"categories"},
		Cutoff:    time.Now().Add(time.Minute),
		DryRun:    true,
	})
	if err != nil {
		t.Fatalf("purgeResources: %v", err)
	}
	if !strings.Contains(out.String(), "[dry-run] categories: 1 rows") || !strings.Contains(out.String(), c.ID.String()) {
		t.Fatalf("dry-run output: %q", out.String())
	}
	if n := countAll(t, f.db, &types.Category{}); n != 1 {
		t.Fatalf("dry run removed rows: count=%d", n)
	}
}

func TestPurgeOnlySelectedResources(t *testing.T) {
	f := newPurgeFixture(t)
	c := testutil.SeedCategory(t, f.db, "c")
	g := testutil.SeedGenre(t, f.db, "g")
	testutil.SoftDelete(t, f.db, c)
	testutil.SoftDelete(t, f.db, g)

	var out bytes.Buffer
	err := purgeResources(context.Background(), testutil.Logger(t), &out, f.repos, purgeOptions{
		Resources: []string{"categories"},
		Cutoff:    time.Now().Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("purgeResources: %v", err)
	}
	if n := countAll(t, f.db, &types.Category{}); n != 0 {
		t.Fatalf("categories left: %d", n)
	}
	if n := countAll(t, f.db, &types.Genre{}); n != 1 {
		t.Fatalf("genres should be untouched: %d", n)
	}
	if !strings.Contains(out.String(), "categories: purged 1 of 1 rows") || !strings.Contains(out.String(), c.ID.String()) {
		t.Fatalf("output: %q", out.String())
	}
}

func TestPurgeUnknownResourceStillRunsOthers(t *testing.T) {
	f := newPurgeFixture(t)
	m := testutil.SeedCastMember(t, f.db, "Ana", types.CastMemberActor)
	testutil.SoftDelete(t, f.db, m)

	var out bytes.Buffer
	err := purgeResources(context.Background(), testutil.Logger(t), &out, f.repos, purgeOptions{
		Resources: []string{"studios", "cast_members"},
		Cutoff:    time.Now().Add(time.Minute),
	})
	if err == nil || !strings.Contains(err.Error(), `unknown resource "studios"`) {
		t.Fatalf("err: got=%v", err)
	}
	if n := countAll(t, f.db, &types.CastMember{}); n != 0 {
		t.Fatalf("cast members left: %d", n)
	}
}

func TestPurgeDefaultsToEveryResourceAndKeepsRecentRows(t *testing.T) {
	f := newPurgeFixture(t)
	v := testutil.SeedVideo(t, f.db, "v")
	c := testutil.SeedCategory(t, f.db, "c")
	testutil.SeedGenre(t, f.db, "live")
	testutil.SoftDelete(t, f.db, v)
	testutil.SoftDelete(t, f.db, c)

	var out bytes.Buffer
	if err := purgeResources(context.Background(), testutil.Logger(t), &out, f.repos, purgeOptions{
		Cutoff: time.Now().Add(-time.Hour),
	}); err != nil {
		t.Fatalf("purgeResources: %v", err)
	}
	if n := countAll(t, f.db, &types.Video{}) + countAll(t, f.db, &types.Category{}); n != 2 {
		t.Fatalf("rows deleted after the cutoff were purged: %d left", n)
	}

	if err := purgeResources(context.Background(), testutil.Logger(t), &out, f.repos, purgeOptions{
		Cutoff: time.Now().Add(time.Minute),
	}); err != nil {
		t.Fatalf("purgeResources: %v", err)
	}
	if n := countAll(t, f.db, &types.Video{}) + countAll(t, f.db, &types.Category{}); n != 0 {
		t.Fatalf("rows left: %d", n)
	}
	if n := countAll(t, f.db, &types.Genre{}); n != 1 {
		t.Fatalf("live genre purged: %d", n)
	}
	for _, name := range defaultResources {
		if !strings.Contains(out.String(), name+": purged") {
			t.Fatalf("no report for %s: %q", name, out.String())
		}
	}
}
