package hubservice

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// trendWindow is how many recent inspections the varroa trend looks at.
const trendWindow = 5

const (
	TrendUnknown = "unknown"
	TrendRising  = "rising"
	TrendSteady  = "steady"
	TrendFalling = "falling"
)

const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

// Alert is a condition in the latest inspection a beekeeper should act on
type Alert struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

type HiveStatus struct {
	HiveID              string                  `json:"hive_id"`
	Latest              *models.InspectionEntry `json:"latest"`
	Inspections         int64                   `json:"inspections"`
	DaysSinceInspection int                     `json:"days_since_inspection"`
	VarroaTrend         string                  `json:"varroa_trend"`
	// VarroaCounts holds the diaper counts of the recent inspections, newest first.
	VarroaCounts []int   `json:"varroa_counts"`
	Alerts       []Alert `json:"alerts"`
}

// GetHiveStatus summarizes a hive from its recent inspection cards
func (s *HubService) GetHiveStatus(ctx context.Context, hiveID string) (*HiveStatus, error) {
	page, err := s.ListInspections(ctx, models.InspectionFilters{HiveID: hiveID}, 0, trendWindow)
	if err != nil {
		return nil, err
	}
	if len(page.Items) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("hive %s has no inspections", hiveID), nil)
	}

	latest := page.Items[0]
	counts := make([]int, 0, len(page.Items))
	for _, e := range page.Items {
		counts = append(counts, e.Record.VarroaDiaperCount())
	}

	status := &HiveStatus{
		HiveID:              hiveID,
		Latest:              latest,
		Inspections:         page.Total,
		DaysSinceInspection: latest.Record.Inventory().InspectionDate.DaysUntil(models.DateOf(s.now())),
		VarroaTrend:         varroaTrend(counts),
		VarroaCounts:        counts,
		Alerts:              alertsFor(latest.Record),
	}
	if len(status.Alerts) > 0 {
		nuts.L.Infof("[InspectionService] Hive %s has %d alert(s)", hiveID, len(status.Alerts))
	}
	return status, nil
}

// varroaTrend compares the newest diaper count with the oldest in the window.
func varroaTrend(newestFirst []int) string {
	if len(newestFirst) < 2 {
		return TrendUnknown
	}
	newest, oldest := newestFirst[0], newestFirst[len(newestFirst)-1]
	switch {
	case newest > oldest:
		return TrendRising
	case newest < oldest:
		return TrendFalling
	default:
		return TrendSteady
	}
}

func alertsFor(r models.Inspection) []Alert {
	alerts := []Alert{}
	h := r.Health()
	q := r.QueenReproduction()

	if h.CompleteHiveLost {
		alerts = append(alerts, Alert{"colony_lost", SeverityCritical, "the colony was reported lost"})
	}
	if h.VarroaMites.Level() >= models.AmountMany.Level() {
		alerts = append(alerts, Alert{"varroa_high", SeverityWarning,
			fmt.Sprintf("varroa infestation observed as %s", h.VarroaMites.Label())})
	}
	if q.Swarmed {
		alerts = append(alerts, Alert{"swarmed", SeverityWarning, "the colony has swarmed"})
	}
	if q.CappedQueenCells > 0 && !q.Swarmed {
		alerts = append(alerts, Alert{"swarm_preparation", SeverityWarning,
			fmt.Sprintf("%d capped queen cell(s) found", q.CappedQueenCells)})
	}
	if r.State().Strength.Score() < 0 {
		alerts = append(alerts, Alert{"weak_colony", SeverityInfo, "colony strength rated bad"})
	}
	return alerts
}
