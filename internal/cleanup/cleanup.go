package cleanup

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

const (
	EventHiveInspectionsDeleted = "hive.inspections_deleted"
	EventInspectionsPurged      = "inspections.purged"
)

// CleanupService coordinates bulk deletion of inspection cards
type CleanupService struct {
	inspections repository.InspectionRepository
	events      *nuts.EventEmitter
}

// New creates a new CleanupService
func New(inspections repository.InspectionRepository) *CleanupService {
	return &CleanupService{
		inspections: inspections,
		events:      nuts.NewEventEmitter(),
	}
}

// DeleteHiveInspections deletes every inspection of a hive in one transaction
func (s *CleanupService) DeleteHiveInspections(ctx context.Context, hiveID string) (int64, error) {
	if hiveID == "" {
		return 0, errors.NewValidationError("hive id is required", nil)
	}

	// Start transaction
	tx, err := s.inspections.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Will be ignored if transaction is committed

	n, err := s.inspections.DeleteByHive(ctx, hiveID, tx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete inspections: %w", err)
	}

	// Commit transaction
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	nuts.L.Infof("[Cleanup] Deleted %d inspection(s) of hive %s", n, hiveID)
	s.events.Emit(EventHiveInspectionsDeleted, hiveID, n)
	return n, nil
}

// PurgeBefore deletes inspections carried out strictly before the given day
func (s *CleanupService) PurgeBefore(ctx context.Context, before models.Date) (int64, error) {
	n, err := s.inspections.DeleteBefore(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inspections: %w", err)
	}

	nuts.L.Infof("[Cleanup] Purged %d inspection(s) before %s", n, before)
	s.events.Emit(EventInspectionsPurged, before.String(), n)
	return n, nil
}

// OnCleanup registers a callback for cleanup events. The handler receives
// the hive id or cutoff date and the number of deleted inspections.
func (s *CleanupService) OnCleanup(event string, handler func(id string, count int64)) {
	s.events.On(event, nuts.NID("cleanup", 8), func(args ...interface{}) {
		if len(args) > 1 {
			id, ok := args[0].(string)
			count, ok2 := args[1].(int64)
			if ok && ok2 {
				handler(id, count)
			}
		}
	})
}
