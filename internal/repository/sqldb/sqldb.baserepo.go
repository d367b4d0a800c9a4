// FilePath: server/stockkarte/internal/repository/sqldb/sqldb.baserepo.go
package sqldb

import (
	"context"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/database"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/errors"
)

// BaseRepo carries the connection and the transaction helpers shared by
// the repositories in this package. Queries are written with ? placeholders
// and rebound for the driver in use.
type BaseRepo struct {
	db database.DB
}

func (r *BaseRepo) BeginTx(ctx context.Context) (database.Transaction, error) {
	tx, err := r.db.GetDB().BeginTxx(ctx, nil)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to begin transaction", err)
	}
	return tx, nil
}

func (r *BaseRepo) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return errors.NewUnavailableError("failed to ping database", err)
	}
	return nil
}

func (r *BaseRepo) rebind(query string) string {
	return r.db.GetDB().Rebind(query)
}
