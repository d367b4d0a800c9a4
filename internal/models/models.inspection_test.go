package models_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models/modelstest"
)

// validFields returns a complete, valid field set for one inspection.
func validFields() models.InspectionFields {
	return modelstest.Fields()
}

func mustInspection(t *testing.T, fields models.InspectionFields) models.Inspection {
	t.Helper()
	rec, err := models.NewInspection(fields)
	if err != nil {
		t.Fatalf("NewInspection: %v", err)
	}
	return rec
}

func TestNewInspection_KeepsFieldsExactly(t *testing.T) {
	in := validFields()
	rec := mustInspection(t, in)

	if diff := cmp.Diff(in, rec.Fields()); diff != "" {
		t.Fatalf("fields changed during construction (-in +got):\n%s", diff)
	}
	if rec.Brood() != in.Brood || rec.Treatment() != in.Treatment || rec.Inventory() != in.Inventory {
		t.Fatalf("sub-record accessors disagree with input")
	}
	if rec.FramesForBrood() != 8 || rec.VarroaDiaperCount() != 12 {
		t.Fatalf("scalars = %d/%d; want 8/12", rec.FramesForBrood(), rec.VarroaDiaperCount())
	}
	if rec.IsZero() {
		t.Fatalf("constructed record reports IsZero")
	}
}

func TestNewInspection_ExampleScenario(t *testing.T) {
	f := validFields()
	f.Brood.BroodFramesAmount = 3
	f.Brood.Eggs = models.AmountMany
	f.QueenReproduction.Swarmed = false
	f.Treatment.VarroaTreatment = models.VarroaTreatment{Kind: models.TreatmentOxalicAcid, Dosage: models.AmountSome}

	rec := mustInspection(t, f)
	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := models.UnmarshalInspection(data)
	if err != nil {
		t.Fatalf("UnmarshalInspection: %v", err)
	}
	if back != rec {
		t.Fatalf("round trip mismatch:\n%s", cmp.Diff(rec.Fields(), back.Fields()))
	}
}

func TestNewInspection_FieldsAreACopy(t *testing.T) {
	rec := mustInspection(t, validFields())
	f := rec.Fields()
	f.Brood.Eggs = models.AmountNone
	f.Inventory.Name = "changed"

	if rec.Brood().Eggs != models.AmountMany || rec.Inventory().Name != "Hive 7" {
		t.Fatalf("mutating the returned fields changed the record")
	}
}

func TestNewInspection_InvalidEnumValue(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.InspectionFields)
		field  string
	}{
		{"fifth amount level", func(f *models.InspectionFields) { f.Brood.Eggs = "huge" }, "brood.eggs"},
		{"empty amount", func(f *models.InspectionFields) { f.Health.VarroaMites = "" }, "health.varroa_mites"},
		{"unknown race", func(f *models.InspectionFields) { f.Inventory.Race = "buckfast" }, "inventory.race"},
		{"unknown frame", func(f *models.InspectionFields) { f.Inventory.HiveFrame = "warre" }, "inventory.hive_frame"},
		{"unknown location", func(f *models.InspectionFields) { f.Inventory.Location = "moon" }, "inventory.location"},
		{"unknown direction", func(f *models.InspectionFields) { f.Inventory.EntranceDirection = "up" }, "inventory.entrance_direction"},
		{"state out of set", func(f *models.InspectionFields) { f.State.Strength = "excellent" }, "state.strength"},
		{"combined intensity", func(f *models.InspectionFields) { f.Treatment.Intensity = "tilted|complete" }, "treatment.intensity"},
		{"queen method", func(f *models.InspectionFields) { f.Treatment.QueenAdded = "stolen" }, "treatment.queen_added"},
		{"bees adjustment", func(f *models.InspectionFields) { f.Treatment.Bees = "doubled" }, "treatment.bees"},
		{"treatment kind", func(f *models.InspectionFields) { f.Treatment.VarroaTreatment.Kind = "" }, "treatment.varroa_treatment.kind"},
		{"treatment dosage", func(f *models.InspectionFields) { f.Treatment.VarroaTreatment.Dosage = "a_ton" }, "treatment.varroa_treatment.dosage"},
		{"other without label", func(f *models.InspectionFields) {
			f.Treatment.VarroaTreatment = models.VarroaTreatment{Kind: models.TreatmentOther, Dosage: models.AmountSome}
		}, "treatment.varroa_treatment.label"},
		{"label on named agent", func(f *models.InspectionFields) { f.Treatment.VarroaTreatment.Label = "thymol" }, "treatment.varroa_treatment.label"},
		{"other with blank label", func(f *models.InspectionFields) {
			f.Treatment.VarroaTreatment = models.VarroaTreatment{Kind: models.TreatmentOther, Label: " \t ", Dosage: models.AmountSome}
		}, "treatment.varroa_treatment.label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			rec, err := models.NewInspection(f)
			if err == nil {
				t.Fatalf("expected error, got record")
			}
			if !errors.IsInvalidEnumValue(err) {
				t.Fatalf("error = %v; want invalid_enum_value", err)
			}
			if got := errors.FromError(err).Field; got != tt.field {
				t.Fatalf("field = %q; want %q", got, tt.field)
			}
			if !rec.IsZero() {
				t.Fatalf("failed construction returned a partial record")
			}
		})
	}
}

func TestNewInspection_OutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.InspectionFields)
		field  string
	}{
		{"negative frames for brood", func(f *models.InspectionFields) { f.FramesForBrood = -1 }, "frames_for_brood"},
		{"frames for brood above byte", func(f *models.InspectionFields) { f.FramesForBrood = 256 }, "frames_for_brood"},
		{"negative brood frames", func(f *models.InspectionFields) { f.Brood.BroodFramesAmount = -3 }, "brood.brood_frames_amount"},
		{"negative brood levels", func(f *models.InspectionFields) { f.Inventory.BroodLevels = -1 }, "inventory.brood_levels"},
		{"negative queen cells", func(f *models.InspectionFields) { f.QueenReproduction.CappedQueenCells = -2 }, "queen_reproduction.capped_queen_cells"},
		{"frame delta too small", func(f *models.InspectionFields) { f.Treatment.ChangedFrames.Feed = -129 }, "treatment.changed_frames.feed"},
		{"frame delta too large", func(f *models.InspectionFields) { f.Treatment.ChangedFrames.Pollen = 128 }, "treatment.changed_frames.pollen"},
		{"negative feed", func(f *models.InspectionFields) { f.Treatment.FeedLiquidGrams = -1 }, "treatment.feed_liquid_grams"},
		{"excessive feed", func(f *models.InspectionFields) { f.Treatment.FeedSolidGrams = models.MaxFeedGrams + 1 }, "treatment.feed_solid_grams"},
		{"negative mite drop", func(f *models.InspectionFields) { f.VarroaDiaperCount = -5 }, "varroa_diaper_count"},
		{"mite drop too large", func(f *models.InspectionFields) { f.VarroaDiaperCount = models.MaxMiteDrop + 1 }, "varroa_diaper_count"},
		{"missing inspection date", func(f *models.InspectionFields) { f.Inventory.InspectionDate = models.Date{} }, "inventory.inspection_date"},
		{"impossible inspection date", func(f *models.InspectionFields) {
			f.Inventory.InspectionDate = models.NewDate(2024, time.February, 30)
		}, "inventory.inspection_date"},
		{"impossible queen birth", func(f *models.InspectionFields) {
			f.Inventory.QueenBirth = models.NewDate(2023, time.Month(13), 1)
		}, "inventory.queen_birth"},
		{"queen born after inspection", func(f *models.InspectionFields) {
			f.Inventory.QueenBirth = models.NewDate(2024, time.May, 2)
		}, "inventory.queen_birth"},
		{"inspection year above four digits", func(f *models.InspectionFields) {
			f.Inventory.InspectionDate = models.NewDate(10000, time.January, 1)
		}, "inventory.inspection_date"},
		{"negative inspection year", func(f *models.InspectionFields) {
			f.Inventory.InspectionDate = models.NewDate(-5, time.January, 1)
		}, "inventory.inspection_date"},
		{"inspection year zero", func(f *models.InspectionFields) {
			f.Inventory.InspectionDate = models.NewDate(0, time.March, 1)
		}, "inventory.inspection_date"},
		{"queen birth year above four digits", func(f *models.InspectionFields) {
			f.Inventory.QueenBirth = models.NewDate(10000, time.January, 1)
		}, "inventory.queen_birth"},
		{"negative queen birth year", func(f *models.InspectionFields) {
			f.Inventory.QueenBirth = models.NewDate(-5, time.January, 1)
		}, "inventory.queen_birth"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			_, err := models.NewInspection(f)
			if !errors.IsOutOfRange(err) {
				t.Fatalf("error = %v; want out_of_range", err)
			}
			if got := errors.FromError(err).Field; got != tt.field {
				t.Fatalf("field = %q; want %q", got, tt.field)
			}
		})
	}
}

func TestNewInspection_AcceptsBounds(t *testing.T) {
	f := validFields()
	f.FramesForBrood = 0
	f.Brood.BroodFramesAmount = models.MaxCount
	f.Treatment.ChangedFrames.Brood = models.MinFrameDelta
	f.Treatment.ChangedFrames.Feed = models.MaxFrameDelta
	f.Treatment.FeedSolidGrams = models.MaxFeedGrams
	f.VarroaDiaperCount = models.MaxMiteDrop
	f.Inventory.QueenBirth = f.Inventory.InspectionDate
	f.Treatment.QueenAdded = models.QueenNotAdded
	f.Treatment.VarroaTreatment = models.VarroaTreatment{Kind: models.TreatmentOther, Label: "thymol", Dosage: models.AmountALot}

	if _, err := models.NewInspection(f); err != nil {
		t.Fatalf("NewInspection at bounds: %v", err)
	}

	f.Inventory.QueenBirth = models.Date{}
	if _, err := models.NewInspection(f); err != nil {
		t.Fatalf("NewInspection without queen birth: %v", err)
	}
}

func TestNewInspection_DateYearBoundsRoundTrip(t *testing.T) {
	for _, d := range []models.Date{
		models.NewDate(models.MinYear, time.January, 1),
		models.NewDate(models.MaxYear, time.December, 31),
	} {
		f := validFields()
		f.Inventory.InspectionDate = d
		f.Inventory.QueenBirth = d
		rec := mustInspection(t, f)

		data, err := rec.Marshal()
		if err != nil {
			t.Fatalf("Marshal(%s): %v", d, err)
		}
		back, err := models.UnmarshalInspection(data)
		if err != nil {
			t.Fatalf("UnmarshalInspection(%s): %v", d, err)
		}
		if back != rec {
			t.Fatalf("round trip mismatch for %s:\n%s", d, cmp.Diff(rec.Fields(), back.Fields()))
		}
	}
}

func TestNewInspection_RejectsInvalidUTF8(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *models.InspectionFields)
		field  string
	}{
		{"hive name", func(f *models.InspectionFields) { f.Inventory.Name = "Hive \xff" }, "inventory.name"},
		{"treatment label", func(f *models.InspectionFields) {
			f.Treatment.VarroaTreatment = models.VarroaTreatment{Kind: models.TreatmentOther, Label: "x\xfe", Dosage: models.AmountSome}
		}, "treatment.varroa_treatment.label"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validFields()
			tt.mutate(&f)
			rec, err := models.NewInspection(f)
			if !errors.IsValidation(err) {
				t.Fatalf("error = %v; want validation", err)
			}
			if got := errors.FromError(err).Field; got != tt.field {
				t.Fatalf("field = %q; want %q", got, tt.field)
			}
			if !rec.IsZero() {
				t.Fatalf("failed construction returned a partial record")
			}
		})
	}

	f := validFields()
	f.Inventory.Name = "Stock Süd 🐝"
	rec := mustInspection(t, f)
	data, err := rec.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := models.UnmarshalInspection(data)
	if err != nil || back != rec {
		t.Fatalf("multibyte name did not survive the round trip: %v", err)
	}
}

func TestNewInspection_ReportsFirstViolation(t *testing.T) {
	f := validFields()
	f.Brood.Eggs = "huge"
	f.FramesForBrood = -1

	_, err := models.NewInspection(f)
	if !errors.IsInvalidEnumValue(err) || errors.IsOutOfRange(err) {
		t.Fatalf("error = %v; want only the brood.eggs violation", err)
	}
}

func TestChangedFrames_Net(t *testing.T) {
	cf := models.ChangedFrames{Brood: -1, Feed: 2, Empty: 3, Pollen: -4, ConstructionWithFoundationStrip: 1}
	if got := cf.Net(); got != 1 {
		t.Fatalf("Net() = %d; want 1", got)
	}
}
