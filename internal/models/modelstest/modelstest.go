// Package modelstest provides inspection fixtures for tests.
package modelstest

import (
	"net/url"
	"testing"
	"time"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
)

// Fields returns a complete, valid field set for one inspection of "Hive 7"
// on 2024-05-01.
func Fields() models.InspectionFields {
	return models.InspectionFields{
		Inventory: models.Inventory{
			Name:              "Hive 7",
			Race:              models.RaceCarnica,
			QueenBirth:        models.NewDate(2023, time.June, 2),
			InspectionDate:    models.NewDate(2024, time.May, 1),
			HiveFrame:         models.FrameZander,
			Location:          models.LocationGardenColony,
			EntranceDirection: models.SouthEast,
			BroodLevels:       2,
		},
		Brood: models.Brood{
			Eggs:              models.AmountMany,
			OpenBrood:         models.AmountMany,
			CappedBrood:       models.AmountALot,
			DroneBrood:        models.AmountSome,
			BroodFramesAmount: 3,
		},
		State: models.State{
			Strength:   models.StateWell,
			Meekness:   models.StateOkay,
			AirTraffic: models.AmountMany,
			FeedAmount: models.AmountSome,
		},
		Health: models.Health{
			VarroaMites:      models.AmountSome,
			CrippledWings:    models.AmountNone,
			HatchInterrupted: models.AmountNone,
			HoleyBroodCells:  models.AmountNone,
		},
		QueenReproduction: models.QueenReproduction{
			TestQueenCups:  models.AmountSome,
			OpenQueenCells: 1,
			Swarmed:        false,
		},
		Treatment: models.Treatment{
			ChangedFrames: models.ChangedFrames{
				Brood:                      -1,
				Empty:                      2,
				ConstructionWithFoundation: 1,
			},
			Bees:            models.Unchanged,
			FeedSolidGrams:  500,
			FeedLiquidGrams: 0,
			QueenExcluder:   models.Added,
			Intensity:       models.IntensityComplete,
			CutDroneBrood:   true,
			VarroaTreatment: models.VarroaTreatment{
				Kind:   models.TreatmentOxalicAcid,
				Dosage: models.AmountSome,
			},
		},
		FramesForBrood:    8,
		VarroaDiaperCount: 12,
	}
}

// Inspection builds a record from Fields after applying mutate, failing t
// when the result is not a valid inspection.
func Inspection(t testing.TB, mutate ...func(*models.InspectionFields)) models.Inspection {
	t.Helper()
	f := Fields()
	for _, m := range mutate {
		m(&f)
	}
	rec, err := models.NewInspection(f)
	if err != nil {
		t.Fatalf("modelstest: %v", err)
	}
	return rec
}

// OnDate sets the inspection date.
func OnDate(year int, month time.Month, day int) func(*models.InspectionFields) {
	return func(f *models.InspectionFields) {
		f.Inventory.InspectionDate = models.NewDate(year, month, day)
	}
}

// Form returns Fields as a browser would post it, with dotted field names
// and one unrelated key.
func Form() url.Values {
	return url.Values{
		"inventory.name":                                        {"Hive 7"},
		"inventory.race":                                        {"carnica"},
		"inventory.queen_birth":                                 {"2023-06-02"},
		"inventory.inspection_date":                             {"2024-05-01"},
		"inventory.hive_frame":                                  {"zander"},
		"inventory.location":                                    {"garden_colony"},
		"inventory.entrance_direction":                          {"se"},
		"inventory.brood_levels":                                {"2"},
		"brood.eggs":                                            {"many"},
		"brood.open_brood":                                      {"many"},
		"brood.capped_brood":                                    {"a_lot"},
		"brood.drone_brood":                                     {"some"},
		"brood.brood_frames_amount":                             {"3"},
		"state.strength":                                        {"well"},
		"state.meekness":                                        {"okay"},
		"state.air_traffic":                                     {"many"},
		"state.feed_amount":                                     {"some"},
		"health.varroa_mites":                                   {"some"},
		"health.crippled_wings":                                 {"none"},
		"health.hatch_interrupted":                              {"none"},
		"health.holey_brood_cells":                              {"none"},
		"queen_reproduction.test_queen_cups":                    {"some"},
		"queen_reproduction.open_queen_cells":                   {"1"},
		"treatment.changed_frames.brood":                        {"-1"},
		"treatment.changed_frames.empty":                        {"2"},
		"treatment.changed_frames.construction_with_foundation": {"1"},
		"treatment.bees":                                        {"unchanged"},
		"treatment.feed_solid_grams":                            {"500"},
		"treatment.queen_excluder":                              {"added"},
		"treatment.intensity":                                   {"complete"},
		"treatment.cut_drone_brood":                             {"on"},
		"treatment.varroa_treatment.kind":                       {"oxalic_acid"},
		"treatment.varroa_treatment.dosage":                     {"some"},
		"frames_for_brood":                                      {"8"},
		"varroa_diaper_count":                                   {"12"},
		"csrf_token":                                            {"ignored"},
	}
}
