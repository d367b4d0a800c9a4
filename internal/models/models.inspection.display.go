package models

import (
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// displayCatalog holds translations for Display. Keys are the English texts,
// so a missing translation falls back to English.
var displayCatalog = newDisplayCatalog()

// displayLanguages lists the supported display languages; the first one is
// used when nothing matches.
var displayLanguages = language.NewMatcher([]language.Tag{language.English, language.German})

func newDisplayCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	german := map[string]string{
		"Stockkarte %s, %s":  "Stockkarte %s, %s",
		"Inventory":          "Bestand",
		"Brood":              "Brut",
		"State":              "Volkszustand",
		"Health":             "Gesundheit",
		"Queen reproduction": "Weiselzellen",
		"Treatment":          "Behandlung",
		"Record":             "Karte",

		"Name":                  "Name",
		"Race":                  "Rasse",
		"Queen born":            "Königin geboren",
		"Inspection date":       "Durchsicht am",
		"Frame":                 "Rähmchenmaß",
		"Location":              "Standort",
		"Entrance":              "Flugloch",
		"Brood levels":          "Bruträume",
		"Eggs":                  "Stifte",
		"Open brood":            "Offene Brut",
		"Capped brood":          "Verdeckelte Brut",
		"Drone brood":           "Drohnenbrut",
		"Brood frames":          "Brutwaben",
		"Strength":              "Stärke",
		"Meekness":              "Sanftmut",
		"Air traffic":           "Flugbetrieb",
		"Feed stores":           "Futtervorrat",
		"Varroa mites":          "Varroamilben",
		"Crippled wings":        "Verkrüppelte Flügel",
		"Hatch interrupted":     "Lückenhafte Brut",
		"Holey brood cells":     "Löchrige Brutzellen",
		"Colony lost":           "Volk verloren",
		"Test queen cups":       "Spielnäpfchen",
		"Open queen cells":      "Offene Weiselzellen",
		"Capped queen cells":    "Verdeckelte Weiselzellen",
		"Hatched queen cells":   "Geschlüpfte Weiselzellen",
		"Swarmed":               "Geschwärmt",
		"Queen added":           "Königin zugesetzt",
		"Frames changed":        "Waben verändert",
		"brood":                 "Brut",
		"feed":                  "Futter",
		"empty":                 "Leer",
		"pollen":                "Pollen",
		"with foundation":       "mit Mittelwand",
		"without foundation":    "ohne Mittelwand",
		"with foundation strip": "mit Anfangsstreifen",
		"Bees":                  "Bienen",
		"Solid feed":            "Futterteig",
		"Liquid feed":           "Flüssigfutter",
		"Queen excluder":        "Absperrgitter",
		"Review":                "Durchsicht",
		"Broke queen cells":     "Weiselzellen gebrochen",
		"Cut drone brood":       "Drohnenbrut geschnitten",
		"Varroa treatment":      "Varroabehandlung",
		"Frames for brood":      "Waben für Brut",
		"Varroa diaper":         "Varroawindel",

		"%d g":     "%d g",
		"%s (%s)":  "%s (%s)",
		"%+d net":  "%+d netto",
		"%d mites": "%d Milben",

		"yes":               "ja",
		"no":                "nein",
		"unknown":           "unbekannt",
		"none":              "keine",
		"some":              "einige",
		"many":              "viele",
		"a lot":             "sehr viele",
		"bad":               "schlecht",
		"okay":              "mittel",
		"well":              "gut",
		"added":             "zugefügt",
		"unchanged":         "unverändert",
		"removed":           "entfernt",
		"no review":         "keine Durchsicht",
		"cover opened only": "nur Deckel geöffnet",
		"tilted":            "gekippt",
		"honey room only":   "nur Honigraum",
		"brood partly":      "Brutraum teilweise",
		"complete":          "vollständig",
		"divided":           "geteilt",
		"queen cell":        "Weiselzelle",
		"virgin queen":      "unbegattete Königin",
		"mated queen":       "begattete Königin",
		"formic acid":       "Ameisensäure",
		"organic acid":      "organische Säure",
		"oxalic acid":       "Oxalsäure",
		"powdered sugar":    "Puderzucker",
		"other":             "andere",
		"urban":             "Stadt",
		"garden colony":     "Kleingarten",
		"rural":             "ländlich",
		"forest":            "Wald",
		"agricultural":      "Landwirtschaft",
		"north":             "Nord",
		"north-east":        "Nordost",
		"east":              "Ost",
		"south-east":        "Südost",
		"south":             "Süd",
		"south-west":        "Südwest",
		"west":              "West",
		"north-west":        "Nordwest",
	}
	for key, msg := range german {
		if err := b.SetString(language.English, key, key); err != nil {
			panic(err)
		}
		if err := b.SetString(language.German, key, msg); err != nil {
			panic(err)
		}
	}
	return b
}

// Display renders r as a human-readable text card in the given language.
// Unsupported languages fall back to English. The output is meant for people
// and is neither stable nor parseable.
func (r Inspection) Display(lang language.Tag) string {
	tag, _, _ := displayLanguages.Match(lang)
	p := message.NewPrinter(tag, message.Catalog(displayCatalog))
	tr := func(key string) string { return p.Sprintf(key) }
	yesNo := func(b bool) string {
		if b {
			return tr("yes")
		}
		return tr("no")
	}

	var sb strings.Builder
	inv := r.f.Inventory
	sb.WriteString(p.Sprintf("Stockkarte %s, %s", inv.Name, inv.InspectionDate.String()))
	sb.WriteString("\n")

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	section := func(title string) {
		tw.Write([]byte("\n" + tr(title) + "\n"))
	}
	row := func(label, value string) {
		tw.Write([]byte("  " + tr(label) + ":\t" + value + "\n"))
	}
	subrow := func(label string, delta int) {
		tw.Write([]byte("    " + tr(label) + ":\t" + p.Sprintf("%+d", delta) + "\n"))
	}
	grams := func(g int) string { return p.Sprintf("%d g", g) }

	queenBirth := tr("unknown")
	if !inv.QueenBirth.IsZero() {
		queenBirth = inv.QueenBirth.String()
	}

	section("Inventory")
	row("Name", inv.Name)
	row("Race", inv.Race.Label())
	row("Queen born", queenBirth)
	row("Inspection date", inv.InspectionDate.String())
	row("Frame", inv.HiveFrame.Label())
	row("Location", tr(inv.Location.Label()))
	row("Entrance", tr(inv.EntranceDirection.Label()))
	row("Brood levels", p.Sprintf("%d", inv.BroodLevels))

	b := r.f.Brood
	section("Brood")
	row("Eggs", tr(b.Eggs.Label()))
	row("Open brood", tr(b.OpenBrood.Label()))
	row("Capped brood", tr(b.CappedBrood.Label()))
	row("Drone brood", tr(b.DroneBrood.Label()))
	row("Brood frames", p.Sprintf("%d", b.BroodFramesAmount))

	s := r.f.State
	section("State")
	row("Strength", tr(s.Strength.Label()))
	row("Meekness", tr(s.Meekness.Label()))
	row("Air traffic", tr(s.AirTraffic.Label()))
	row("Feed stores", tr(s.FeedAmount.Label()))

	h := r.f.Health
	section("Health")
	row("Varroa mites", tr(h.VarroaMites.Label()))
	row("Crippled wings", tr(h.CrippledWings.Label()))
	row("Hatch interrupted", tr(h.HatchInterrupted.Label()))
	row("Holey brood cells", tr(h.HoleyBroodCells.Label()))
	row("Colony lost", yesNo(h.CompleteHiveLost))

	q := r.f.QueenReproduction
	section("Queen reproduction")
	row("Test queen cups", tr(q.TestQueenCups.Label()))
	row("Open queen cells", p.Sprintf("%d", q.OpenQueenCells))
	row("Capped queen cells", p.Sprintf("%d", q.CappedQueenCells))
	row("Hatched queen cells", p.Sprintf("%d", q.HatchedQueenCells))
	row("Swarmed", yesNo(q.Swarmed))

	t := r.f.Treatment
	cf := t.ChangedFrames
	section("Treatment")
	row("Queen added", tr(t.QueenAdded.Label()))
	row("Frames changed", p.Sprintf("%+d net", cf.Net()))
	subrow("brood", cf.Brood)
	subrow("feed", cf.Feed)
	subrow("empty", cf.Empty)
	subrow("pollen", cf.Pollen)
	subrow("with foundation", cf.ConstructionWithFoundation)
	subrow("without foundation", cf.ConstructionWithoutFoundation)
	subrow("with foundation strip", cf.ConstructionWithFoundationStrip)
	row("Bees", tr(t.Bees.Label()))
	row("Solid feed", grams(t.FeedSolidGrams))
	row("Liquid feed", grams(t.FeedLiquidGrams))
	row("Queen excluder", tr(t.QueenExcluder.Label()))
	row("Review", tr(t.Intensity.Label()))
	row("Broke queen cells", yesNo(t.BrokeQueenCells))
	row("Cut drone brood", yesNo(t.CutDroneBrood))
	agent := t.VarroaTreatment.Name()
	if t.VarroaTreatment.Kind != TreatmentOther {
		agent = tr(agent)
	}
	row("Varroa treatment", p.Sprintf("%s (%s)", agent, tr(t.VarroaTreatment.Dosage.Label())))

	section("Record")
	row("Frames for brood", p.Sprintf("%d", r.f.FramesForBrood))
	row("Varroa diaper", p.Sprintf("%d mites", r.f.VarroaDiaperCount))

	tw.Flush()
	return sb.String()
}

// String implements fmt.Stringer with the English display.
func (r Inspection) String() string {
	return r.Display(language.English)
}
