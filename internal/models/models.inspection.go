// FilePath: server/stockkarte/internal/models/models.inspection.go
package models

// Inspection ("Stockkarte") is one point-in-time inspection of a hive.
// See https://community.hiveeyes.org/t/kategorien-fur-bob-stockkarte/877/3
//
// An Inspection can only be obtained from NewInspection or by decoding, so
// every instance holds a validated field set. It has no setters; the
// accessors return copies. Values are comparable with ==.
type Inspection struct {
	f InspectionFields
}

// InspectionFields is the raw, unvalidated input for an Inspection. Field
// order is the stable serialization order.
type InspectionFields struct {
	Inventory         Inventory         `json:"inventory" yaml:"inventory" schema:"inventory"`
	Brood             Brood             `json:"brood" yaml:"brood" schema:"brood"`
	State             State             `json:"state" yaml:"state" schema:"state"`
	Health            Health            `json:"health" yaml:"health" schema:"health"`
	QueenReproduction QueenReproduction `json:"queen_reproduction" yaml:"queen_reproduction" schema:"queen_reproduction"`
	Treatment         Treatment         `json:"treatment" yaml:"treatment" schema:"treatment"`
	FramesForBrood    int               `json:"frames_for_brood" yaml:"frames_for_brood" schema:"frames_for_brood"`
	VarroaDiaperCount int               `json:"varroa_diaper_count" yaml:"varroa_diaper_count" schema:"varroa_diaper_count"`
}

// Inventory identifies the hive and its setup at inspection time
type Inventory struct {
	Name              string        `json:"name" yaml:"name" schema:"name"`
	Race              MelliferaRace `json:"race" yaml:"race" schema:"race"`
	QueenBirth        Date          `json:"queen_birth" yaml:"queen_birth" schema:"queen_birth"`
	InspectionDate    Date          `json:"inspection_date" yaml:"inspection_date" schema:"inspection_date"`
	HiveFrame         HiveFrame     `json:"hive_frame" yaml:"hive_frame" schema:"hive_frame"`
	Location          Location      `json:"location" yaml:"location" schema:"location"`
	EntranceDirection Direction     `json:"entrance_direction" yaml:"entrance_direction" schema:"entrance_direction"`
	BroodLevels       int           `json:"brood_levels" yaml:"brood_levels" schema:"brood_levels"`
}

type Brood struct {
	Eggs              Amount `json:"eggs" yaml:"eggs" schema:"eggs"`
	OpenBrood         Amount `json:"open_brood" yaml:"open_brood" schema:"open_brood"`
	CappedBrood       Amount `json:"capped_brood" yaml:"capped_brood" schema:"capped_brood"`
	DroneBrood        Amount `json:"drone_brood" yaml:"drone_brood" schema:"drone_brood"`
	BroodFramesAmount int    `json:"brood_frames_amount" yaml:"brood_frames_amount" schema:"brood_frames_amount"`
}

// State is the vigor of the colony
type State struct {
	Strength   StateChoice `json:"strength" yaml:"strength" schema:"strength"`
	Meekness   StateChoice `json:"meekness" yaml:"meekness" schema:"meekness"`
	AirTraffic Amount      `json:"air_traffic" yaml:"air_traffic" schema:"air_traffic"`
	FeedAmount Amount      `json:"feed_amount" yaml:"feed_amount" schema:"feed_amount"`
}

type Health struct {
	VarroaMites      Amount `json:"varroa_mites" yaml:"varroa_mites" schema:"varroa_mites"`
	CrippledWings    Amount `json:"crippled_wings" yaml:"crippled_wings" schema:"crippled_wings"`
	HatchInterrupted Amount `json:"hatch_interrupted" yaml:"hatch_interrupted" schema:"hatch_interrupted"`
	HoleyBroodCells  Amount `json:"holey_brood_cells" yaml:"holey_brood_cells" schema:"holey_brood_cells"`
	CompleteHiveLost bool   `json:"complete_hive_lost" yaml:"complete_hive_lost" schema:"complete_hive_lost"`
}

type QueenReproduction struct {
	TestQueenCups     Amount `json:"test_queen_cups" yaml:"test_queen_cups" schema:"test_queen_cups"`
	OpenQueenCells    int    `json:"open_queen_cells" yaml:"open_queen_cells" schema:"open_queen_cells"`
	CappedQueenCells  int    `json:"capped_queen_cells" yaml:"capped_queen_cells" schema:"capped_queen_cells"`
	HatchedQueenCells int    `json:"hatched_queen_cells" yaml:"hatched_queen_cells" schema:"hatched_queen_cells"`
	Swarmed           bool   `json:"swarmed" yaml:"swarmed" schema:"swarmed"`
}

// ChangedFrames holds per-frame-type deltas: positive for frames added,
// negative for frames removed.
type ChangedFrames struct {
	Brood                           int `json:"brood" yaml:"brood" schema:"brood"`
	Feed                            int `json:"feed" yaml:"feed" schema:"feed"`
	Empty                           int `json:"empty" yaml:"empty" schema:"empty"`
	Pollen                          int `json:"pollen" yaml:"pollen" schema:"pollen"`
	ConstructionWithFoundation      int `json:"construction_with_foundation" yaml:"construction_with_foundation" schema:"construction_with_foundation"`
	ConstructionWithoutFoundation   int `json:"construction_without_foundation" yaml:"construction_without_foundation" schema:"construction_without_foundation"`
	ConstructionWithFoundationStrip int `json:"construction_with_foundation_strip" yaml:"construction_with_foundation_strip" schema:"construction_with_foundation_strip"`
}

// Net returns the total number of frames added minus removed.
func (c ChangedFrames) Net() int {
	return c.Brood + c.Feed + c.Empty + c.Pollen +
		c.ConstructionWithFoundation + c.ConstructionWithoutFoundation + c.ConstructionWithFoundationStrip
}

// VarroaTreatment is the agent applied and its dosage. Label names the agent
// and is only set for TreatmentOther.
type VarroaTreatment struct {
	Kind   VarroaTreatmentKind `json:"kind" yaml:"kind" schema:"kind"`
	Label  string              `json:"label,omitempty" yaml:"label,omitempty" schema:"label"`
	Dosage Amount              `json:"dosage" yaml:"dosage" schema:"dosage"`
}

// Name returns the label for TreatmentOther and the kind's label otherwise.
func (v VarroaTreatment) Name() string {
	if v.Kind == TreatmentOther && v.Label != "" {
		return v.Label
	}
	return v.Kind.Label()
}

// Treatment is what the beekeeper did during the inspection. Feed masses
// are whole grams.
type Treatment struct {
	QueenAdded      QueenIntroduction `json:"queen_added,omitempty" yaml:"queen_added,omitempty" schema:"queen_added"`
	ChangedFrames   ChangedFrames     `json:"changed_frames" yaml:"changed_frames" schema:"changed_frames"`
	Bees            AddOrRemove       `json:"bees" yaml:"bees" schema:"bees"`
	FeedSolidGrams  int               `json:"feed_solid_grams" yaml:"feed_solid_grams" schema:"feed_solid_grams"`
	FeedLiquidGrams int               `json:"feed_liquid_grams" yaml:"feed_liquid_grams" schema:"feed_liquid_grams"`
	QueenExcluder   AddOrRemove       `json:"queen_excluder" yaml:"queen_excluder" schema:"queen_excluder"`
	Intensity       ReviewIntensity   `json:"intensity" yaml:"intensity" schema:"intensity"`
	BrokeQueenCells bool              `json:"broke_queen_cells" yaml:"broke_queen_cells" schema:"broke_queen_cells"`
	CutDroneBrood   bool              `json:"cut_drone_brood" yaml:"cut_drone_brood" schema:"cut_drone_brood"`
	VarroaTreatment VarroaTreatment   `json:"varroa_treatment" yaml:"varroa_treatment" schema:"varroa_treatment"`
}

// NewInspection validates fields and returns the resulting Inspection.
// Construction is all-or-nothing: on error the zero Inspection is returned.
func NewInspection(fields InspectionFields) (Inspection, error) {
	if err := fields.Validate(); err != nil {
		return Inspection{}, err
	}
	return Inspection{f: fields}, nil
}

// Fields returns a copy of the validated field set.
func (r Inspection) Fields() InspectionFields { return r.f }

func (r Inspection) Inventory() Inventory                 { return r.f.Inventory }
func (r Inspection) Brood() Brood                         { return r.f.Brood }
func (r Inspection) State() State                         { return r.f.State }
func (r Inspection) Health() Health                       { return r.f.Health }
func (r Inspection) QueenReproduction() QueenReproduction { return r.f.QueenReproduction }
func (r Inspection) Treatment() Treatment                 { return r.f.Treatment }
func (r Inspection) FramesForBrood() int                  { return r.f.FramesForBrood }
func (r Inspection) VarroaDiaperCount() int               { return r.f.VarroaDiaperCount }

// IsZero reports whether r is the zero Inspection, which no successful
// construction ever returns.
func (r Inspection) IsZero() bool { return r == Inspection{} }
