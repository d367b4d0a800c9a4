package models

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
)

const (
	// MaxCount bounds frame, level and queen cell counts.
	MaxCount = 255
	// MaxMiteDrop bounds the varroa diaper count.
	MaxMiteDrop = 65535
	// MinFrameDelta and MaxFrameDelta bound a single changed-frames entry.
	MinFrameDelta = -128
	MaxFrameDelta = 127
	// MaxFeedGrams bounds a single feeding (100 kg).
	MaxFeedGrams = 100000
)

var dateBounds = fmt.Sprintf("calendar date in years %04d..%04d", MinYear, MaxYear)

type enumValue interface {
	IsValid() bool
	String() string
}

// validator collects only the first failure; later checks become no-ops.
type validator struct {
	err error
}

func (v *validator) enum(field string, value enumValue) {
	if v.err == nil && !value.IsValid() {
		v.err = errors.NewInvalidEnumValueError(field, value.String())
	}
}

func (v *validator) count(field string, value, max int) {
	v.between(field, value, 0, max)
}

func (v *validator) between(field string, value, min, max int) {
	if v.err == nil && (value < min || value > max) {
		v.err = errors.NewOutOfRangeError(field, value, fmt.Sprintf("%d..%d", min, max))
	}
}

func (v *validator) text(field, value string) {
	if v.err == nil && !utf8.ValidString(value) {
		v.err = errors.NewValidationError("text is not valid UTF-8", nil).WithField(field)
	}
}

func (v *validator) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

// Validate checks every field in serialization order and returns the first violation.
func (f InspectionFields) Validate() error {
	v := &validator{}

	inv := f.Inventory
	v.text("inventory.name", inv.Name)
	v.enum("inventory.race", inv.Race)
	if !inv.QueenBirth.IsZero() && !inv.QueenBirth.IsValid() {
		v.fail(errors.NewOutOfRangeError("inventory.queen_birth", inv.QueenBirth.Date.String(), dateBounds))
	}
	switch {
	case inv.InspectionDate.IsZero():
		v.fail(errors.NewOutOfRangeError("inventory.inspection_date", "", "required"))
	case !inv.InspectionDate.IsValid():
		v.fail(errors.NewOutOfRangeError("inventory.inspection_date", inv.InspectionDate.Date.String(), dateBounds))
	case !inv.QueenBirth.IsZero() && inv.InspectionDate.Before(inv.QueenBirth):
		v.fail(errors.NewOutOfRangeError("inventory.queen_birth", inv.QueenBirth.String(), "not after inspection_date"))
	}
	v.enum("inventory.hive_frame", inv.HiveFrame)
	v.enum("inventory.location", inv.Location)
	v.enum("inventory.entrance_direction", inv.EntranceDirection)
	v.count("inventory.brood_levels", inv.BroodLevels, MaxCount)

	b := f.Brood
	v.enum("brood.eggs", b.Eggs)
	v.enum("brood.open_brood", b.OpenBrood)
	v.enum("brood.capped_brood", b.CappedBrood)
	v.enum("brood.drone_brood", b.DroneBrood)
	v.count("brood.brood_frames_amount", b.BroodFramesAmount, MaxCount)

	s := f.State
	v.enum("state.strength", s.Strength)
	v.enum("state.meekness", s.Meekness)
	v.enum("state.air_traffic", s.AirTraffic)
	v.enum("state.feed_amount", s.FeedAmount)

	h := f.Health
	v.enum("health.varroa_mites", h.VarroaMites)
	v.enum("health.crippled_wings", h.CrippledWings)
	v.enum("health.hatch_interrupted", h.HatchInterrupted)
	v.enum("health.holey_brood_cells", h.HoleyBroodCells)

	q := f.QueenReproduction
	v.enum("queen_reproduction.test_queen_cups", q.TestQueenCups)
	v.count("queen_reproduction.open_queen_cells", q.OpenQueenCells, MaxCount)
	v.count("queen_reproduction.capped_queen_cells", q.CappedQueenCells, MaxCount)
	v.count("queen_reproduction.hatched_queen_cells", q.HatchedQueenCells, MaxCount)

	t := f.Treatment
	v.enum("treatment.queen_added", t.QueenAdded)
	cf := t.ChangedFrames
	v.between("treatment.changed_frames.brood", cf.Brood, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.feed", cf.Feed, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.empty", cf.Empty, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.pollen", cf.Pollen, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.construction_with_foundation", cf.ConstructionWithFoundation, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.construction_without_foundation", cf.ConstructionWithoutFoundation, MinFrameDelta, MaxFrameDelta)
	v.between("treatment.changed_frames.construction_with_foundation_strip", cf.ConstructionWithFoundationStrip, MinFrameDelta, MaxFrameDelta)
	v.enum("treatment.bees", t.Bees)
	v.count("treatment.feed_solid_grams", t.FeedSolidGrams, MaxFeedGrams)
	v.count("treatment.feed_liquid_grams", t.FeedLiquidGrams, MaxFeedGrams)
	v.enum("treatment.queen_excluder", t.QueenExcluder)
	v.enum("treatment.intensity", t.Intensity)
	vt := t.VarroaTreatment
	v.enum("treatment.varroa_treatment.kind", vt.Kind)
	v.text("treatment.varroa_treatment.label", vt.Label)
	if vt.Kind == TreatmentOther && strings.TrimSpace(vt.Label) == "" {
		v.fail(errors.NewInvalidEnumValueError("treatment.varroa_treatment.label", vt.Label))
	}
	if vt.Kind != TreatmentOther && vt.Label != "" {
		v.fail(errors.NewInvalidEnumValueError("treatment.varroa_treatment.label", vt.Label))
	}
	v.enum("treatment.varroa_treatment.dosage", vt.Dosage)

	v.count("frames_for_brood", f.FramesForBrood, MaxCount)
	v.count("varroa_diaper_count", f.VarroaDiaperCount, MaxMiteDrop)

	return v.err
}
