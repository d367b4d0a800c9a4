package hubservice

import (
	"time"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/cleanup"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/repository"
	nuts "github.com/vaudience/go-nuts"
)

const (
	EventInspectionRecorded = "inspection.recorded"
	EventInspectionDeleted  = "inspection.deleted"
)

// HubService contains all repositories and service-wide dependencies
type HubService struct {
	Inspections repository.InspectionRepository
	Cleanup     *cleanup.CleanupService
	events      *nuts.EventEmitter
	now         func() time.Time
}

// New creates a new HubService instance
func New(inspections repository.InspectionRepository) *HubService {
	return &HubService{
		Inspections: inspections,
		Cleanup:     cleanup.New(inspections),
		events:      nuts.NewEventEmitter(),
		now:         time.Now,
	}
}

// Validate checks if all required repositories are initialized
func (s *HubService) Validate() error {
	if s.Inspections == nil {
		return ErrMissingRepository("inspections")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// OnInspection registers a callback for inspection events. The entry passed
// to the handler is a copy.
func (s *HubService) OnInspection(event string, handler func(entry models.InspectionEntry)) {
	s.events.On(event, nuts.NID("hdl", 8), func(args ...interface{}) {
		if len(args) > 0 {
			if entry, ok := args[0].(models.InspectionEntry); ok {
				handler(entry)
			}
		}
	})
}
