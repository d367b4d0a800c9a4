// FilePath: server/stockkarte/internal/repository/repository.go
package repository

import (
	"context"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
)

// InspectionRepository defines the interface for stored inspection cards.
// Entries are immutable once created; there is no update.
type InspectionRepository interface {
	database.Repository
	// Create stores entry. A second entry with the same fingerprint for the
	// same hive fails with a conflict error.
	Create(ctx context.Context, entry *models.InspectionEntry) error
	Get(ctx context.Context, id string) (*models.InspectionEntry, error)
	// ListByHive returns the total matching count and one page, newest inspection first.
	ListByHive(ctx context.Context, filters models.InspectionFilters, offset, limit int) (int64, []*models.InspectionEntry, error)
	Latest(ctx context.Context, hiveID string) (*models.InspectionEntry, error)
	Delete(ctx context.Context, id string) error
	// DeleteByHive removes every entry of hiveID. A nil tx runs outside a transaction.
	DeleteByHive(ctx context.Context, hiveID string, tx database.Transaction) (int64, error)
	// DeleteBefore removes entries inspected strictly before the given day.
	DeleteBefore(ctx context.Context, before models.Date) (int64, error)
	CountByHive(ctx context.Context, hiveID string) (int64, error)
	Ping(ctx context.Context) error
}
