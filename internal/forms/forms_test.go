package forms

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models/modelstest"
)

func TestDecodeInspection(t *testing.T) {
	rec, err := DecodeInspection(modelstest.Form())
	if err != nil {
		t.Fatalf("DecodeInspection: %v", err)
	}
	if diff := cmp.Diff(modelstest.Fields(), rec.Fields()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeInspection_Errors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		check func(error) bool
	}{
		{"non-numeric count", "varroa_diaper_count", "twelve", errors.IsMalformedInput},
		{"bad date", "inventory.inspection_date", "01.05.2024", errors.IsMalformedInput},
		{"bad bool", "health.complete_hive_lost", "maybe", errors.IsMalformedInput},
		{"unknown enum", "brood.eggs", "heaps", errors.IsInvalidEnumValue},
		{"count too large", "queen_reproduction.open_queen_cells", "256", errors.IsOutOfRange},
		{"negative count", "brood.brood_frames_amount", "-1", errors.IsOutOfRange},
		{"year beyond four digits", "inventory.inspection_date", "10000-01-01", errors.IsMalformedInput},
		{"invalid utf-8 name", "inventory.name", "Hive \xff", errors.IsValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := modelstest.Form()
			form.Set(tt.key, tt.value)
			rec, err := DecodeInspection(form)
			if !tt.check(err) {
				t.Fatalf("error = %v", err)
			}
			if !rec.IsZero() {
				t.Fatalf("got a record alongside the error")
			}
		})
	}
}

func TestDecodeInspection_MalformedDetails(t *testing.T) {
	form := modelstest.Form()
	form.Set("frames_for_brood", "x")
	form.Set("brood.brood_frames_amount", "y")

	_, err := DecodeInspection(form)
	apiErr := errors.FromError(err)
	details, ok := apiErr.Details.(map[string]any)
	if !ok {
		t.Fatalf("details = %#v", apiErr.Details)
	}
	want := []string{"brood.brood_frames_amount", "frames_for_brood"}
	if diff := cmp.Diff(want, details["fields"]); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFilters(t *testing.T) {
	filters, err := DecodeFilters("hv_1", url.Values{"from": {"2024-04-01"}, "to": {"2024-04-30"}, "limit": {"5"}})
	if err != nil {
		t.Fatalf("DecodeFilters: %v", err)
	}
	want := models.InspectionFilters{
		HiveID: "hv_1",
		From:   models.NewDate(2024, time.April, 1),
		To:     models.NewDate(2024, time.April, 30),
	}
	if filters != want {
		t.Fatalf("filters = %+v", filters)
	}

	if _, err := DecodeFilters("hv_1", url.Values{"from": {"april"}}); !errors.IsMalformedInput(err) {
		t.Fatalf("bad from error = %v", err)
	}
}

func TestPagination(t *testing.T) {
	offset, limit := Pagination(url.Values{"offset": {"10"}, "limit": {"abc"}})
	if offset != 10 || limit != 0 {
		t.Fatalf("Pagination = %d, %d", offset, limit)
	}
}
