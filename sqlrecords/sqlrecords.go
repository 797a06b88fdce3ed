// Package sqlrecords adapts database/sql query results into a sheet.SyncProvider,
// generalizing a one-off database-export routine (a hardcoded users-table scan)
// into a reusable generic adapter that works with any query and any row type.
package sqlrecords

import (
	"database/sql"
	"fmt"
)

// Provider runs Query against DB and scans each resulting row into an R via Scan,
// satisfying sheet.SyncProvider[R].
type Provider[R any] struct {
	DB *sql.DB
	Query string
	Args []any
	Scan func(*sql.Rows) (R, error)
}

// New builds a Provider. scan is called once per row returned by query and must
// consume exactly the columns that query selects.
func New[R any](db *sql.DB, query string, scan func(*sql.Rows) (R, error), args...any) *Provider[R] {
	return &Provider[R]{DB: db, Query: query, Args: args, Scan: scan}
}

// Load implements sheet.SyncProvider[R].
func (p *Provider[R]) Load() ([]R, error) {
	rows, err := p.DB.Query(p.Query, p.Args...)
	if err != nil {
		return nil, fmt.Errorf("sqlrecords: query: %w", err)
	}
	defer rows.Close()

	var records []R
	for rows.Next() {
		r, err := p.Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlrecords: scan row %d: %w", len(records), err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlrecords: iterate rows: %w", err)
	}
	return records, nil
}
