package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/blnkfinance/purchase-lookup/config"
	"github.com/blnkfinance/purchase-lookup/internal/filter"
)

// Datasource runs compiled lookups against the shared pool. It holds no other state.
type Datasource struct {
	Conn     *sqlx.DB
	Dialect  filter.Dialect
	PageSize int
}

// NewDataSource wraps an open pool. The dialect follows the pool's driver.
func NewDataSource(conn *sqlx.DB, pageSize int) (IDataSource, error) {
	if conn == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	dialect, err := filter.DialectFor(conn.DriverName())
	if err != nil {
		return nil, err
	}
	if pageSize <= 0 {
		pageSize = config.DEFAULT_PAGE_SIZE
	}
	return &Datasource{Conn: conn, Dialect: dialect, PageSize: pageSize}, nil
}

// Ping checks that the pool can reach the database.
func (d Datasource) Ping(ctx context.Context) error {
	if err := d.Conn.PingContext(ctx); err != nil {
		return storageError("Database unavailable", err)
	}
	return nil
}
