package models

import (
	"slices"
	"strings"
)

// MelliferaRace is a subspecies or ecotype of the western honey bee.
// See https://de.wikipedia.org/wiki/Rassen_der_Westlichen_Honigbiene
type MelliferaRace string

const (
	RaceAdami        MelliferaRace = "adami"
	RaceCarnica      MelliferaRace = "carnica"
	RaceCecropia     MelliferaRace = "cecropia"
	RaceCypria       MelliferaRace = "cypria"
	RaceIberiensis   MelliferaRace = "iberiensis"
	RaceLigustica    MelliferaRace = "ligustica"
	RaceMacedonica   MelliferaRace = "macedonica"
	RaceMellifera    MelliferaRace = "mellifera"
	RaceRuttneri     MelliferaRace = "ruttneri"
	RaceSiciliana    MelliferaRace = "siciliana"
	RaceSossimai     MelliferaRace = "sossimai"
	RaceTaurica      MelliferaRace = "taurica"
	RaceAnatoliaca   MelliferaRace = "anatoliaca"
	RaceArtemisia    MelliferaRace = "artemisia"
	RaceCaucasia     MelliferaRace = "caucasia"
	RacePomonella    MelliferaRace = "pomonella"
	RaceRemipes      MelliferaRace = "remipes"
	RaceSinisxinyuan MelliferaRace = "sinisxinyuan"
	RaceSyriaca      MelliferaRace = "syriaca"
	RaceAdansonii    MelliferaRace = "adansonii"
	RaceCapensis     MelliferaRace = "capensis"
	RaceIntermissa   MelliferaRace = "intermissa"
	RaceJemenitica   MelliferaRace = "jemenitica"
	RaceLamarckii    MelliferaRace = "lamarckii"
	RaceLitorea      MelliferaRace = "litorea"
	RaceMonticola    MelliferaRace = "monticola"
	RaceSahariensis  MelliferaRace = "sahariensis"
	RaceScutellata   MelliferaRace = "scutellata"
	RaceSimensis     MelliferaRace = "simensis"
	RaceUnicolor     MelliferaRace = "unicolor"
)

var melliferaRaces = []MelliferaRace{
	// Europe
	RaceAdami, RaceCarnica, RaceCecropia, RaceCypria, RaceIberiensis, RaceLigustica,
	RaceMacedonica, RaceMellifera, RaceRuttneri, RaceSiciliana, RaceSossimai, RaceTaurica,
	// Near East and Central Asia
	RaceAnatoliaca, RaceArtemisia, RaceCaucasia, RacePomonella, RaceRemipes,
	RaceSinisxinyuan, RaceSyriaca,
	// Africa
	RaceAdansonii, RaceCapensis, RaceIntermissa, RaceJemenitica, RaceLamarckii,
	RaceLitorea, RaceMonticola, RaceSahariensis, RaceScutellata, RaceSimensis, RaceUnicolor,
}

func MelliferaRaces() []MelliferaRace { return slices.Clone(melliferaRaces) }

func (r MelliferaRace) IsValid() bool  { return slices.Contains(melliferaRaces, r) }
func (r MelliferaRace) String() string { return string(r) }

// Label returns the trinomial, e.g. "Apis mellifera carnica".
func (r MelliferaRace) Label() string {
	if !r.IsValid() {
		return string(r)
	}
	return "Apis mellifera " + strings.ToLower(string(r))
}
