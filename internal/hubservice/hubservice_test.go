package hubservice

import (
	"context"
	"testing"
	"time"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models/modelstest"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository/sqldb"
)

func newHub(t *testing.T) *HubService {
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

	s := New(repo)
	s.now = func() time.Time { return time.Date(2024, time.May, 11, 9, 30, 0, 0, time.UTC) }
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	return s
}

func record(t *testing.T, s *HubService, hiveID string, mutate ...func(*models.InspectionFields)) *models.InspectionEntry {
	t.Helper()
	entry, err := s.RecordInspection(context.Background(), hiveID, modelstest.Inspection(t, mutate...))
	if err != nil {
		t.Fatalf("RecordInspection: %v", err)
	}
	return entry
}

func onDay(day, mites int) func(*models.InspectionFields) {
	return func(f *models.InspectionFields) {
		f.Inventory.InspectionDate = models.NewDate(2024, time.May, day)
		f.VarroaDiaperCount = mites
	}
}

func TestRecordInspection(t *testing.T) {
	s := newHub(t)
	events := make(chan models.InspectionEntry, 1)
	s.OnInspection(EventInspectionRecorded, func(e models.InspectionEntry) { events <- e })

	entry := record(t, s, "hv_1")
	if entry.ID == "" || entry.Fingerprint == "" {
		t.Fatalf("entry not populated: %+v", entry)
	}
	if !entry.RecordedAt.Equal(s.now()) {
		t.Fatalf("RecordedAt = %v", entry.RecordedAt)
	}

	select {
	case e := <-events:
		if e.ID != entry.ID {
			t.Fatalf("event for %s; want %s", e.ID, entry.ID)
		}
	case <-time.After(time.Second):
		t.Fatalf("no %s event", EventInspectionRecorded)
	}

	got, err := s.GetInspection(context.Background(), entry.ID)
	if err != nil {
		t.Fatalf("GetInspection: %v", err)
	}
	if got.Record != entry.Record {
		t.Fatalf("stored record differs")
	}
}

func TestRecordInspection_Rejects(t *testing.T) {
	s := newHub(t)
	ctx := context.Background()

	if _, err := s.RecordInspection(ctx, "", modelstest.Inspection(t)); !errors.IsValidation(err) {
		t.Fatalf("missing hive id error = %v", err)
	}
	if _, err := s.RecordInspection(ctx, "hv_1", models.Inspection{}); !errors.IsValidation(err) {
		t.Fatalf("zero record error = %v", err)
	}
	record(t, s, "hv_1")
	if _, err := s.RecordInspection(ctx, "hv_1", modelstest.Inspection(t)); !errors.IsConflict(err) {
		t.Fatalf("duplicate error = %v; want conflict", err)
	}
}

func TestListInspections_Pagination(t *testing.T) {
	s := newHub(t)
	ctx := context.Background()
	for day := 1; day <= 3; day++ {
		record(t, s, "hv_1", onDay(day, day))
	}

	tests := []struct {
		name          string
		offset, limit int
		wantLimit     int
		wantItems     int
	}{
		{"default limit", 0, 0, DefaultPageLimit, 3},
		{"clamped limit", 0, 1000, MaxPageLimit, 3},
		{"negative offset", -4, 2, 2, 2},
		{"second page", 2, 2, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.ListInspections(ctx, models.InspectionFilters{HiveID: "hv_1"}, tt.offset, tt.limit)
			if err != nil {
				t.Fatalf("ListInspections: %v", err)
			}
			if page.Limit != tt.wantLimit || len(page.Items) != tt.wantItems || page.Total != 3 {
				t.Fatalf("page = limit %d, %d items, total %d", page.Limit, len(page.Items), page.Total)
			}
			if page.Offset < 0 {
				t.Fatalf("offset = %d", page.Offset)
			}
		})
	}

	if _, err := s.ListInspections(ctx, models.InspectionFilters{}, 0, 10); !errors.IsValidation(err) {
		t.Fatalf("missing hive id error = %v", err)
	}
	bad := models.InspectionFilters{HiveID: "hv_1", From: models.NewDate(2024, time.May, 3), To: models.NewDate(2024, time.May, 1)}
	if _, err := s.ListInspections(ctx, bad, 0, 10); !errors.IsValidation(err) {
		t.Fatalf("inverted range error = %v", err)
	}
}

func TestLatestAndDelete(t *testing.T) {
	s := newHub(t)
	ctx := context.Background()
	record(t, s, "hv_1", onDay(1, 4))
	newest := record(t, s, "hv_1", onDay(8, 9))

	latest, err := s.LatestInspection(ctx, "hv_1")
	if err != nil || latest.ID != newest.ID {
		t.Fatalf("LatestInspection = %v, %v", latest, err)
	}

	deleted := make(chan string, 1)
	s.OnInspection(EventInspectionDeleted, func(e models.InspectionEntry) { deleted <- e.ID })
	if err := s.DeleteInspection(ctx, newest.ID); err != nil {
		t.Fatalf("DeleteInspection: %v", err)
	}
	select {
	case id := <-deleted:
		if id != newest.ID {
			t.Fatalf("deleted event for %s", id)
		}
	case <-time.After(time.Second):
		t.Fatalf("no %s event", EventInspectionDeleted)
	}
	if err := s.DeleteInspection(ctx, newest.ID); !errors.IsNotFound(err) {
		t.Fatalf("second delete error = %v; want not_found", err)
	}
}

func TestGetHiveStatus(t *testing.T) {
	s := newHub(t)
	ctx := context.Background()
	record(t, s, "hv_1", onDay(1, 4))
	record(t, s, "hv_1", onDay(4, 6))
	record(t, s, "hv_1", onDay(8, 20), func(f *models.InspectionFields) {
		f.Health.VarroaMites = models.AmountMany
		f.QueenReproduction.CappedQueenCells = 2
		f.State.Strength = models.StateBad
	})

	status, err := s.GetHiveStatus(ctx, "hv_1")
	if err != nil {
		t.Fatalf("GetHiveStatus: %v", err)
	}
	if status.Inspections != 3 || status.DaysSinceInspection != 3 {
		t.Fatalf("status = %d inspections, %d days", status.Inspections, status.DaysSinceInspection)
	}
	if status.VarroaTrend != TrendRising {
		t.Fatalf("trend = %s; want rising (counts %v)", status.VarroaTrend, status.VarroaCounts)
	}

	codes := map[string]bool{}
	for _, a := range status.Alerts {
		codes[a.Code] = true
	}
	for _, want := range []string{"varroa_high", "swarm_preparation", "weak_colony"} {
		if !codes[want] {
			t.Errorf("missing alert %s in %+v", want, status.Alerts)
		}
	}
	if codes["colony_lost"] || codes["swarmed"] {
		t.Errorf("unexpected alerts %+v", status.Alerts)
	}

	if _, err := s.GetHiveStatus(ctx, "hv_empty"); !errors.IsNotFound(err) {
		t.Fatalf("empty hive error = %v; want not_found", err)
	}
}

func TestVarroaTrend(t *testing.T) {
	tests := []struct {
		counts []int
		want   string
	}{
		{nil, TrendUnknown},
		{[]int{5}, TrendUnknown},
		{[]int{9, 2, 4}, TrendRising},
		{[]int{1, 8}, TrendFalling},
		{[]int{3, 10, 3}, TrendSteady},
	}
	for _, tt := range tests {
		if got := varroaTrend(tt.counts); got != tt.want {
			t.Errorf("varroaTrend(%v) = %s; want %s", tt.counts, got, tt.want)
		}
	}
}

func TestAlertsFor_LostAndSwarmed(t *testing.T) {
	rec := modelstest.Inspection(t, func(f *models.InspectionFields) {
		f.Health.CompleteHiveLost = true
		f.QueenReproduction.Swarmed = true
		f.QueenReproduction.CappedQueenCells = 1
	})
	alerts := alertsFor(rec)
	if len(alerts) != 2 || alerts[0].Code != "colony_lost" || alerts[0].Severity != SeverityCritical || alerts[1].Code != "swarmed" {
		t.Fatalf("alerts = %+v", alerts)
	}
}
