package hubservice

import (
	"context"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// InspectionService handles inspection-card business logic
type InspectionService interface {
	RecordInspection(ctx context.Context, hiveID string, record models.Inspection) (*models.InspectionEntry, error)
	GetInspection(ctx context.Context, id string) (*models.InspectionEntry, error)
	ListInspections(ctx context.Context, filters models.InspectionFilters, offset, limit int) (*InspectionPage, error)
	LatestInspection(ctx context.Context, hiveID string) (*models.InspectionEntry, error)
	DeleteInspection(ctx context.Context, id string) error
	GetHiveStatus(ctx context.Context, hiveID string) (*HiveStatus, error)
}

var _ InspectionService = (*HubService)(nil)

// InspectionPage is one page of a hive's inspections, newest first
type InspectionPage struct {
	Total  int64                     `json:"total"`
	Offset int                       `json:"offset"`
	Limit  int                       `json:"limit"`
	Items  []*models.InspectionEntry `json:"items"`
}

// RecordInspection stores a validated inspection card for a hive
func (s *HubService) RecordInspection(ctx context.Context, hiveID string, record models.Inspection) (*models.InspectionEntry, error) {
	if hiveID == "" {
		return nil, errors.NewValidationError("hive id is required", nil)
	}
	if record.IsZero() {
		return nil, errors.NewValidationError("inspection record is required", nil)
	}

	fingerprint, err := record.Fingerprint()
	if err != nil {
		return nil, err
	}

	entry := &models.InspectionEntry{
		ID:          nuts.NID("insp", 12),
		HiveID:      hiveID,
		Fingerprint: fingerprint,
		Record:      record,
		RecordedAt:  s.now().UTC(),
	}

	nuts.L.Infof("[InspectionService] Recording inspection %s for hive %s (%s)",
		entry.ID, hiveID, record.Inventory().InspectionDate)
	if err := s.Inspections.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.events.Emit(EventInspectionRecorded, *entry)
	return entry, nil
}

// GetInspection retrieves a single inspection by ID
func (s *HubService) GetInspection(ctx context.Context, id string) (*models.InspectionEntry, error) {
	if id == "" {
		return nil, errors.NewValidationError("inspection id is required", nil)
	}
	return s.Inspections.Get(ctx, id)
}

// ListInspections retrieves a paginated list of a hive's inspections
func (s *HubService) ListInspections(ctx context.Context, filters models.InspectionFilters, offset, limit int) (*InspectionPage, error) {
	if filters.HiveID == "" {
		return nil, errors.NewValidationError("hive id is required", nil)
	}
	if !filters.From.IsZero() && !filters.To.IsZero() && filters.To.Before(filters.From) {
		return nil, errors.NewValidationError("'to' must not be before 'from'", nil)
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	total, items, err := s.Inspections.ListByHive(ctx, filters, offset, limit)
	if err != nil {
		return nil, err
	}
	return &InspectionPage{Total: total, Offset: offset, Limit: limit, Items: items}, nil
}

// LatestInspection retrieves the most recent inspection of a hive
func (s *HubService) LatestInspection(ctx context.Context, hiveID string) (*models.InspectionEntry, error) {
	if hiveID == "" {
		return nil, errors.NewValidationError("hive id is required", nil)
	}
	return s.Inspections.Latest(ctx, hiveID)
}

// DeleteInspection removes a single inspection
func (s *HubService) DeleteInspection(ctx context.Context, id string) error {
	entry, err := s.GetInspection(ctx, id)
	if err != nil {
		return err
	}

	nuts.L.Infof("[InspectionService] Deleting inspection %s of hive %s", id, entry.HiveID)
	if err := s.Inspections.Delete(ctx, id); err != nil {
		return err
	}

	s.events.Emit(EventInspectionDeleted, *entry)
	return nil
}
