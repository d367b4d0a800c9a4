// FilePath: server/stockkarte/internal/repository/sqldb/sqldb.inspection.go
package sqldb

import (
	"context"
	"database/sql"
	stderrors "errors"
	"strings"
	"time"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/lib/pq"
	"modernc.org/sqlite"
)

// schema is applied by EnsureSchema. Both statements are idempotent and
// valid for PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS inspections (
		id TEXT PRIMARY KEY,
		hive_id TEXT NOT NULL,
		hive_name TEXT NOT NULL,
		inspection_date TEXT NOT NULL,
		fingerprint TEXT NOT NULL,
		record TEXT NOT NULL,
		recorded_at BIGINT NOT NULL,
		UNIQUE (hive_id, fingerprint)
	)`,
	`CREATE INDEX IF NOT EXISTS inspections_hive_date ON inspections (hive_id, inspection_date)`,
}

const inspectionColumns = `id, hive_id, hive_name, inspection_date, fingerprint, record, recorded_at`

// inspectionRow is the stored shape of an InspectionEntry. The date is kept
// as YYYY-MM-DD text so it orders and compares the same on every driver.
type inspectionRow struct {
	ID             string            `db:"id"`
	HiveID         string            `db:"hive_id"`
	HiveName       string            `db:"hive_name"`
	InspectionDate string            `db:"inspection_date"`
	Fingerprint    string            `db:"fingerprint"`
	Record         models.Inspection `db:"record"`
	RecordedAt     int64             `db:"recorded_at"`
}

func toRow(e *models.InspectionEntry) inspectionRow {
	inv := e.Record.Inventory()
	return inspectionRow{
		ID:             e.ID,
		HiveID:         e.HiveID,
		HiveName:       inv.Name,
		InspectionDate: inv.InspectionDate.String(),
		Fingerprint:    e.Fingerprint,
		Record:         e.Record,
		RecordedAt:     e.RecordedAt.UnixMilli(),
	}
}

func (row inspectionRow) entry() *models.InspectionEntry {
	return &models.InspectionEntry{
		ID:          row.ID,
		HiveID:      row.HiveID,
		Fingerprint: row.Fingerprint,
		Record:      row.Record,
		RecordedAt:  time.UnixMilli(row.RecordedAt).UTC(),
	}
}

type InspectionRepo struct {
	BaseRepo
}

func NewInspectionRepository(db database.DB) *InspectionRepo {
	return &InspectionRepo{BaseRepo: BaseRepo{db: db}}
}

// EnsureSchema creates the inspections table and its index if missing.
func (r *InspectionRepo) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := r.db.GetDB().ExecContext(ctx, stmt); err != nil {
			return errors.NewDatabaseError("failed to create inspections schema", err)
		}
	}
	return nil
}

func (r *InspectionRepo) Create(ctx context.Context, entry *models.InspectionEntry) error {
	if entry.Record.IsZero() {
		return errors.NewValidationError("inspection entry has no record", nil)
	}
	query := `
		INSERT INTO inspections (` + inspectionColumns + `)
		VALUES (:id, :hive_id, :hive_name, :inspection_date, :fingerprint, :record, :recorded_at)`

	_, err := r.db.GetDB().NamedExecContext(ctx, query, toRow(entry))
	if err != nil {
		if isUniqueViolation(err) {
			return errors.NewConflictError("inspection already recorded for this hive", err).
				WithDetails(map[string]string{"hive_id": entry.HiveID, "fingerprint": entry.Fingerprint})
		}
		return errors.NewDatabaseError("failed to create inspection", err)
	}
	return nil
}

func (r *InspectionRepo) Get(ctx context.Context, id string) (*models.InspectionEntry, error) {
	var row inspectionRow
	query := r.rebind(`SELECT ` + inspectionColumns + ` FROM inspections WHERE id = ?`)

	err := r.db.GetDB().GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("inspection not found", err)
		}
		return nil, errors.NewDatabaseError("failed to get inspection", err)
	}
	return row.entry(), nil
}

func (r *InspectionRepo) ListByHive(ctx context.Context, filters models.InspectionFilters, offset, limit int) (int64, []*models.InspectionEntry, error) {
	where := ` WHERE hive_id = ?`
	args := []interface{}{filters.HiveID}
	if !filters.From.IsZero() {
		where += ` AND inspection_date >= ?`
		args = append(args, filters.From.String())
	}
	if !filters.To.IsZero() {
		where += ` AND inspection_date <= ?`
		args = append(args, filters.To.String())
	}

	var total int64
	countQuery := r.rebind(`SELECT COUNT(*) FROM inspections` + where)
	if err := r.db.GetDB().GetContext(ctx, &total, countQuery, args...); err != nil {
		return 0, nil, errors.NewDatabaseError("failed to count inspections", err)
	}

	query := r.rebind(`SELECT ` + inspectionColumns + ` FROM inspections` + where +
		` ORDER BY inspection_date DESC, recorded_at DESC, id DESC LIMIT ? OFFSET ?`)
	rows := []inspectionRow{}
	if err := r.db.GetDB().SelectContext(ctx, &rows, query, append(args, limit, offset)...); err != nil {
		return 0, nil, errors.NewDatabaseError("failed to list inspections", err)
	}

	entries := make([]*models.InspectionEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.entry())
	}
	return total, entries, nil
}

func (r *InspectionRepo) Latest(ctx context.Context, hiveID string) (*models.InspectionEntry, error) {
	_, entries, err := r.ListByHive(ctx, models.InspectionFilters{HiveID: hiveID}, 0, 1)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.NewNotFoundError("hive has no inspections", nil)
	}
	return entries[0], nil
}

func (r *InspectionRepo) Delete(ctx context.Context, id string) error {
	query := r.rebind(`DELETE FROM inspections WHERE id = ?`)

	result, err := r.db.GetDB().ExecContext(ctx, query, id)
	if err != nil {
		return errors.NewDatabaseError("failed to delete inspection", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.NewDatabaseError("failed to get rows affected", err)
	}

	if rows == 0 {
		return errors.NewNotFoundError("inspection not found", nil)
	}

	return nil
}

func (r *InspectionRepo) DeleteByHive(ctx context.Context, hiveID string, tx database.Transaction) (int64, error) {
	query := `DELETE FROM inspections WHERE hive_id = ?`

	var (
		result sql.Result
		err    error
	)
	if tx != nil {
		result, err = tx.ExecContext(ctx, tx.Rebind(query), hiveID)
	} else {
		result, err = r.db.GetDB().ExecContext(ctx, r.rebind(query), hiveID)
	}
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete hive inspections", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows, nil
}

func (r *InspectionRepo) DeleteBefore(ctx context.Context, before models.Date) (int64, error) {
	if before.IsZero() {
		return 0, errors.NewValidationError("a cutoff date is required", nil)
	}
	query := r.rebind(`DELETE FROM inspections WHERE inspection_date < ?`)

	result, err := r.db.GetDB().ExecContext(ctx, query, before.String())
	if err != nil {
		return 0, errors.NewDatabaseError("failed to delete old inspections", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, errors.NewDatabaseError("failed to get rows affected", err)
	}
	return rows, nil
}

func (r *InspectionRepo) CountByHive(ctx context.Context, hiveID string) (int64, error) {
	var count int64
	query := r.rebind(`SELECT COUNT(*) FROM inspections WHERE hive_id = ?`)
	if err := r.db.GetDB().GetContext(ctx, &count, query, hiveID); err != nil {
		return 0, errors.NewDatabaseError("failed to count inspections", err)
	}
	return count, nil
}

// isUniqueViolation recognizes unique constraint failures from lib/pq and
// modernc sqlite.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if stderrors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if stderrors.As(err, &liteErr) {
		return strings.Contains(liteErr.Error(), "UNIQUE constraint failed")
	}
	return false
}
