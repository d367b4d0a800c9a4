package sqldb_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models/modelstest"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository/sqldb"
)

var _ repository.InspectionRepository = (*sqldb.InspectionRepo)(nil)

func newRepo(t *testing.T) *sqldb.InspectionRepo {
	t.Helper()
	ctx := context.Background()
	db, err := database.NewSQLiteDB(ctx, ":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := sqldb.NewInspectionRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	// applying the schema twice is a no-op
	if err := repo.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema again: %v", err)
	}
	return repo
}

func newEntry(t *testing.T, id, hiveID string, day int, mutate ...func(*models.InspectionFields)) *models.InspectionEntry {
	t.Helper()
	rec := modelstest.Inspection(t, append([]func(*models.InspectionFields){modelstest.OnDate(2024, time.May, day)}, mutate...)...)
	fp, err := rec.Fingerprint()
	if err != nil {
		t.Fatalf("Fingerprint: %v", err)
	}
	return &models.InspectionEntry{
		ID:          id,
		HiveID:      hiveID,
		Fingerprint: fp,
		Record:      rec,
		RecordedAt:  time.Date(2024, time.May, day, 18, 0, 0, 0, time.UTC),
	}
}

func TestInspectionRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	want := newEntry(t, "insp_1", "hv_1", 1)

	if err := repo.Create(ctx, want); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.Get(ctx, "insp_1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Record != want.Record {
		t.Fatalf("stored record differs:\n%s", cmp.Diff(want.Record.Fields(), got.Record.Fields()))
	}
	if got.ID != want.ID || got.HiveID != want.HiveID || got.Fingerprint != want.Fingerprint || !got.RecordedAt.Equal(want.RecordedAt) {
		t.Fatalf("entry = %+v; want %+v", got, want)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.IsNotFound(err) {
		t.Fatalf("Get(missing) error = %v; want not_found", err)
	}
}

func TestInspectionRepo_CreateDuplicateConflicts(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)

	if err := repo.Create(ctx, newEntry(t, "insp_1", "hv_1", 1)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Create(ctx, newEntry(t, "insp_2", "hv_1", 1)); !errors.IsConflict(err) {
		t.Fatalf("duplicate Create error = %v; want conflict", err)
	}
	// the same card for a different hive is a different entry
	if err := repo.Create(ctx, newEntry(t, "insp_3", "hv_2", 1)); err != nil {
		t.Fatalf("Create for other hive: %v", err)
	}
}

func TestInspectionRepo_ListAndLatest(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for i, day := range []int{3, 1, 7, 5} {
		e := newEntry(t, "insp_"+string(rune('a'+i)), "hv_1", day)
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, newEntry(t, "insp_other", "hv_2", 9)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	total, page, err := repo.ListByHive(ctx, models.InspectionFilters{HiveID: "hv_1"}, 0, 2)
	if err != nil {
		t.Fatalf("ListByHive: %v", err)
	}
	if total != 4 || len(page) != 2 {
		t.Fatalf("total=%d len=%d; want 4/2", total, len(page))
	}
	if page[0].ID != "insp_c" || page[1].ID != "insp_d" {
		t.Fatalf("page order = %s,%s; want insp_c,insp_d", page[0].ID, page[1].ID)
	}

	filters := models.InspectionFilters{
		HiveID: "hv_1",
		From:   models.NewDate(2024, time.May, 3),
		To:     models.NewDate(2024, time.May, 5),
	}
	total, page, err = repo.ListByHive(ctx, filters, 0, 10)
	if err != nil {
		t.Fatalf("ListByHive filtered: %v", err)
	}
	if total != 2 || len(page) != 2 || page[0].ID != "insp_d" || page[1].ID != "insp_a" {
		t.Fatalf("filtered list = %d entries, total %d", len(page), total)
	}

	latest, err := repo.Latest(ctx, "hv_1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != "insp_c" {
		t.Fatalf("Latest = %s; want insp_c", latest.ID)
	}
	if _, err := repo.Latest(ctx, "hv_empty"); !errors.IsNotFound(err) {
		t.Fatalf("Latest(empty hive) error = %v; want not_found", err)
	}

	count, err := repo.CountByHive(ctx, "hv_1")
	if err != nil || count != 4 {
		t.Fatalf("CountByHive = %d, %v; want 4", count, err)
	}
}

func TestInspectionRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	if err := repo.Create(ctx, newEntry(t, "insp_1", "hv_1", 1)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, "insp_1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "insp_1"); !errors.IsNotFound(err) {
		t.Fatalf("second Delete error = %v; want not_found", err)
	}
}

func TestInspectionRepo_DeleteByHiveInTransaction(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for i, day := range []int{1, 2, 3} {
		if err := repo.Create(ctx, newEntry(t, "insp_"+string(rune('a'+i)), "hv_1", day)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if err := repo.Create(ctx, newEntry(t, "insp_keep", "hv_2", 1)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// rolled back: nothing is removed
	tx, err := repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	if n, err := repo.DeleteByHive(ctx, "hv_1", tx); err != nil || n != 3 {
		t.Fatalf("DeleteByHive in tx = %d, %v", n, err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if count, _ := repo.CountByHive(ctx, "hv_1"); count != 3 {
		t.Fatalf("count after rollback = %d; want 3", count)
	}

	// committed
	tx, err = repo.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx: %v", err)
	}
	if _, err := repo.DeleteByHive(ctx, "hv_1", tx); err != nil {
		t.Fatalf("DeleteByHive: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if count, _ := repo.CountByHive(ctx, "hv_1"); count != 0 {
		t.Fatalf("count after commit = %d; want 0", count)
	}
	if count, _ := repo.CountByHive(ctx, "hv_2"); count != 1 {
		t.Fatalf("other hive lost entries")
	}

	if n, err := repo.DeleteByHive(ctx, "hv_2", nil); err != nil || n != 1 {
		t.Fatalf("DeleteByHive without tx = %d, %v", n, err)
	}
}

func TestInspectionRepo_DeleteBefore(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	for i, day := range []int{1, 10, 20} {
		if err := repo.Create(ctx, newEntry(t, "insp_"+string(rune('a'+i)), "hv_1", day)); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	n, err := repo.DeleteBefore(ctx, models.NewDate(2024, time.May, 10))
	if err != nil {
		t.Fatalf("DeleteBefore: %v", err)
	}
	if n != 1 {
		t.Fatalf("deleted %d; want 1 (cutoff is exclusive)", n)
	}
	if _, err := repo.DeleteBefore(ctx, models.Date{}); !errors.IsValidation(err) {
		t.Fatalf("DeleteBefore(zero) error = %v; want validation", err)
	}
}

func TestInspectionRepo_Ping(t *testing.T) {
	if err := newRepo(t).Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
