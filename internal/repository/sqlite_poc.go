package repository

import (
	"context"
	"fmt"

	"github.com/arjunshenoy/funnelcast/internal/db"
	"github.com/arjunshenoy/funnelcast/internal/domain"
)

// SQLitePocRepo implements PocRepo using a SQLite database.
type SQLitePocRepo struct {
	db db.DBTX
}

// NewSQLitePocRepo creates a new SQLitePocRepo.
func NewSQLitePocRepo(conn db.DBTX) *SQLitePocRepo {
	return &SQLitePocRepo{db: conn}
}

func (r *SQLitePocRepo) Create(ctx context.Context, p *domain.Poc) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO pocs (id, name, created_at) VALUES (?, ?, ?)`,
		p.ID, p.Name, nowUTC())
	if err != nil {
		return fmt.Errorf("inserting poc: %w", err)
	}
	return nil
}

func (r *SQLitePocRepo) List(ctx context.Context) ([]*domain.Poc, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM pocs ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing pocs: %w", err)
	}
	defer rows.Close()

	var pocs []*domain.Poc
	for rows.Next() {
		var p domain.Poc
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scanning poc: %w", err)
		}
		pocs = append(pocs, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pocs: %w", err)
	}
	return pocs, nil
}

func (r *SQLitePocRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM pocs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting poc: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("poc %s: %w", id, ErrNotFound)
	}
	return nil
}
