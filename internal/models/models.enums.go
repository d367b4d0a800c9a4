// FilePath: server/stockkarte/internal/models/models.enums.go
package models

import "slices"

// Every enum below is a closed set serialized by its string value.
// New values are appended, existing values are never renamed.

// Amount is the 4-level ordinal used for observed quantities
type Amount string

const (
	AmountNone Amount = "none"
	AmountSome Amount = "some"
	AmountMany Amount = "many"
	AmountALot Amount = "a_lot"
)

var amounts = []Amount{AmountNone, AmountSome, AmountMany, AmountALot}

// Amounts returns all Amount values in ascending order.
func Amounts() []Amount { return slices.Clone(amounts) }

func (a Amount) IsValid() bool  { return slices.Contains(amounts, a) }
func (a Amount) String() string { return string(a) }

// Level returns the ordinal position (0..3), or -1 for an invalid value.
func (a Amount) Level() int { return slices.Index(amounts, a) }

func (a Amount) Label() string {
	switch a {
	case AmountNone:
		return "none"
	case AmountSome:
		return "some"
	case AmountMany:
		return "many"
	case AmountALot:
		return "a lot"
	}
	return string(a)
}

// StateChoice rates colony vigor
type StateChoice string

const (
	StateBad  StateChoice = "bad"
	StateOkay StateChoice = "okay"
	StateWell StateChoice = "well"
)

var stateChoices = []StateChoice{StateBad, StateOkay, StateWell}

func StateChoices() []StateChoice { return slices.Clone(stateChoices) }

func (s StateChoice) IsValid() bool  { return slices.Contains(stateChoices, s) }
func (s StateChoice) String() string { return string(s) }
func (s StateChoice) Label() string  { return string(s) }

// Score maps bad/okay/well to -1/0/1.
func (s StateChoice) Score() int {
	switch s {
	case StateBad:
		return -1
	case StateWell:
		return 1
	}
	return 0
}

// AddOrRemove records whether something was added, left alone or removed
type AddOrRemove string

const (
	Added     AddOrRemove = "added"
	Unchanged AddOrRemove = "unchanged"
	Removed   AddOrRemove = "removed"
)

var addOrRemoves = []AddOrRemove{Added, Unchanged, Removed}

func AddOrRemoves() []AddOrRemove { return slices.Clone(addOrRemoves) }

func (a AddOrRemove) IsValid() bool  { return slices.Contains(addOrRemoves, a) }
func (a AddOrRemove) String() string { return string(a) }
func (a AddOrRemove) Label() string  { return string(a) }

// Delta maps added/unchanged/removed to +1/0/-1.
func (a AddOrRemove) Delta() int {
	switch a {
	case Added:
		return 1
	case Removed:
		return -1
	}
	return 0
}

// ReviewIntensity is how thoroughly the hive was opened. It is a plain
// ordinal; levels are never combined.
type ReviewIntensity string

const (
	IntensityNone        ReviewIntensity = "none"
	IntensityCoverOnly   ReviewIntensity = "cover_only"
	IntensityTilted      ReviewIntensity = "tilted"
	IntensityHoneyOnly   ReviewIntensity = "honey_only"
	IntensityBroodPartly ReviewIntensity = "brood_partly"
	IntensityComplete    ReviewIntensity = "complete"
	IntensityDivided     ReviewIntensity = "divided"
)

var reviewIntensities = []ReviewIntensity{
	IntensityNone,
	IntensityCoverOnly,
	IntensityTilted,
	IntensityHoneyOnly,
	IntensityBroodPartly,
	IntensityComplete,
	IntensityDivided,
}

func ReviewIntensities() []ReviewIntensity { return slices.Clone(reviewIntensities) }

func (i ReviewIntensity) IsValid() bool  { return slices.Contains(reviewIntensities, i) }
func (i ReviewIntensity) String() string { return string(i) }

func (i ReviewIntensity) Label() string {
	switch i {
	case IntensityNone:
		return "no review"
	case IntensityCoverOnly:
		return "cover opened only"
	case IntensityTilted:
		return "tilted"
	case IntensityHoneyOnly:
		return "honey room only"
	case IntensityBroodPartly:
		return "brood partly"
	case IntensityComplete:
		return "complete"
	case IntensityDivided:
		return "divided"
	}
	return string(i)
}

// QueenIntroduction is how a queen was added. The empty value means no queen was added.
type QueenIntroduction string

const (
	QueenNotAdded QueenIntroduction = ""
	QueenCell     QueenIntroduction = "cell"
	QueenVirgin   QueenIntroduction = "virgin"
	QueenMated    QueenIntroduction = "mated"
)

var queenIntroductions = []QueenIntroduction{QueenNotAdded, QueenCell, QueenVirgin, QueenMated}

func QueenIntroductions() []QueenIntroduction { return slices.Clone(queenIntroductions) }

func (q QueenIntroduction) IsValid() bool  { return slices.Contains(queenIntroductions, q) }
func (q QueenIntroduction) String() string { return string(q) }

func (q QueenIntroduction) Label() string {
	switch q {
	case QueenNotAdded:
		return "none"
	case QueenCell:
		return "queen cell"
	case QueenVirgin:
		return "virgin queen"
	case QueenMated:
		return "mated queen"
	}
	return string(q)
}

// VarroaTreatmentKind is the agent used against varroa
type VarroaTreatmentKind string

const (
	TreatmentApistan       VarroaTreatmentKind = "apistan"
	TreatmentFormicAcid    VarroaTreatmentKind = "formic_acid"
	TreatmentOrganicAcid   VarroaTreatmentKind = "organic_acid"
	TreatmentOxalicAcid    VarroaTreatmentKind = "oxalic_acid"
	TreatmentPowderedSugar VarroaTreatmentKind = "powdered_sugar"
	TreatmentOther         VarroaTreatmentKind = "other"
)

var varroaTreatmentKinds = []VarroaTreatmentKind{
	TreatmentApistan,
	TreatmentFormicAcid,
	TreatmentOrganicAcid,
	TreatmentOxalicAcid,
	TreatmentPowderedSugar,
	TreatmentOther,
}

func VarroaTreatmentKinds() []VarroaTreatmentKind { return slices.Clone(varroaTreatmentKinds) }

func (k VarroaTreatmentKind) IsValid() bool  { return slices.Contains(varroaTreatmentKinds, k) }
func (k VarroaTreatmentKind) String() string { return string(k) }

func (k VarroaTreatmentKind) Label() string {
	switch k {
	case TreatmentApistan:
		return "Apistan"
	case TreatmentFormicAcid:
		return "formic acid"
	case TreatmentOrganicAcid:
		return "organic acid"
	case TreatmentOxalicAcid:
		return "oxalic acid"
	case TreatmentPowderedSugar:
		return "powdered sugar"
	case TreatmentOther:
		return "other"
	}
	return string(k)
}

// Location categorizes the surroundings of the apiary
type Location string

const (
	LocationUrban        Location = "urban"
	LocationGardenColony Location = "garden_colony"
	LocationRural        Location = "rural"
	LocationForest       Location = "forest"
	LocationAgricultural Location = "agricultural"
)

var locations = []Location{
	LocationUrban,
	LocationGardenColony,
	LocationRural,
	LocationForest,
	LocationAgricultural,
}

func Locations() []Location { return slices.Clone(locations) }

func (l Location) IsValid() bool  { return slices.Contains(locations, l) }
func (l Location) String() string { return string(l) }

func (l Location) Label() string {
	if l == LocationGardenColony {
		return "garden colony"
	}
	return string(l)
}

// HiveFrame is the frame standard used in the hive.
// See https://de.wikipedia.org/wiki/R%C3%A4hmchen
type HiveFrame string

const (
	FrameLangstroth      HiveFrame = "langstroth"
	FrameDadantModified  HiveFrame = "dadant_modified"
	FrameDadantBlatt     HiveFrame = "dadant_blatt"
	FrameDeutschNormal   HiveFrame = "deutsch_normal"
	FrameZander          HiveFrame = "zander"
	FrameBritishStandard HiveFrame = "british_standard"
	FrameSchweizerMass   HiveFrame = "schweizer_mass"
)

var hiveFrames = []HiveFrame{
	FrameLangstroth,
	FrameDadantModified,
	FrameDadantBlatt,
	FrameDeutschNormal,
	FrameZander,
	FrameBritishStandard,
	FrameSchweizerMass,
}

func HiveFrames() []HiveFrame { return slices.Clone(hiveFrames) }

func (f HiveFrame) IsValid() bool  { return slices.Contains(hiveFrames, f) }
func (f HiveFrame) String() string { return string(f) }

func (f HiveFrame) Label() string {
	switch f {
	case FrameLangstroth:
		return "Langstroth"
	case FrameDadantModified:
		return "Dadant modified"
	case FrameDadantBlatt:
		return "Dadant Blatt"
	case FrameDeutschNormal:
		return "Deutsch Normalmaß"
	case FrameZander:
		return "Zander"
	case FrameBritishStandard:
		return "British Standard"
	case FrameSchweizerMass:
		return "Schweizermaß"
	}
	return string(f)
}

// Direction is the compass point the hive entrance faces
type Direction string

const (
	North     Direction = "n"
	NorthEast Direction = "ne"
	East      Direction = "e"
	SouthEast Direction = "se"
	South     Direction = "s"
	SouthWest Direction = "sw"
	West      Direction = "w"
	NorthWest Direction = "nw"
)

var directions = []Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

func Directions() []Direction { return slices.Clone(directions) }

func (d Direction) IsValid() bool  { return slices.Contains(directions, d) }
func (d Direction) String() string { return string(d) }

// Degrees returns the clockwise bearing from north.
func (d Direction) Degrees() int {
	i := slices.Index(directions, d)
	if i < 0 {
		return -1
	}
	return i * 45
}

func (d Direction) Label() string {
	switch d {
	case North:
		return "north"
	case NorthEast:
		return "north-east"
	case East:
		return "east"
	case SouthEast:
		return "south-east"
	case South:
		return "south"
	case SouthWest:
		return "south-west"
	case West:
		return "west"
	case NorthWest:
		return "north-west"
	}
	return string(d)
}
