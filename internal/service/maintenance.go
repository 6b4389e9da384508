package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jask/memberhub/internal/database"
)

var ErrNoDB = errors.New("maintenance: db not configured")

// Tables are the directory tables in delete order.
var Tables = []string{"events", "resources", "members"}

// MaintenanceService holds operator actions exposed by the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// ResetResult reports the rows removed per table.
type ResetResult struct {
	Deleted map[string]int64
}

func (r ResetResult) Total() int64 {
	var n int64
	for _, d := range r.Deleted {
		n += d
	}
	return n
}

// Reset empties every directory table in one transaction and compacts the
// file. The schema and migration version are left alone.
func (s *MaintenanceService) Reset(ctx context.Context) (ResetResult, error) {
	if s.DB == nil {
		return ResetResult{}, ErrNoDB
	}
	res := ResetResult{Deleted: make(map[string]int64, len(Tables))}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		for _, t := range Tables {
			out, err := tx.ExecContext(ctx, "DELETE FROM "+t)
			if err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
			n, _ := out.RowsAffected()
			res.Deleted[t] = n
		}
		return nil
	})
	if err != nil {
		return ResetResult{}, err
	}
	if _, err := s.DB.ExecContext(ctx, "VACUUM"); err != nil {
		return res, fmt.Errorf("vacuum: %w", err)
	}
	return res, nil
}

// Counts returns the row count of each directory table.
func (s *MaintenanceService) Counts(ctx context.Context) (map[string]int, error) {
	if s.DB == nil {
		return nil, ErrNoDB
	}
	out := make(map[string]int, len(Tables))
	for _, t := range Tables {
		var n int
		if err := s.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", t, err)
		}
		out[t] = n
	}
	return out, nil
}
