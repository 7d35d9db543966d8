package repository

import (
	"context"

	"table-booking/internal/domain/table"
	"table-booking/internal/infra"
	"table-booking/internal/infra/db"
)

type TableRepository struct {
	db db.DBTX
}

func NewTableRepository(db db.DBTX) *TableRepository {
	return &TableRepository{db: db}
}

func (r *TableRepository) FindAll(ctx context.Context) ([]table.Table, error) {
	rows, err := r.db.Query(ctx, `SELECT id, seats FROM tables ORDER BY id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch table inventory", err)
	}
	defer rows.Close()

	var inventory []table.Table
	for rows.Next() {
		var (
			id    int32
			seats int
		)
		if err := rows.Scan(&id, &seats); err != nil {
			return nil, infra.WrapRepoErr("failed to scan table row", err)
		}
		t, err := table.New(table.ID(id), seats)
		if err != nil {
			return nil, infra.WrapRepoErr("stored table row is invalid", err)
		}
		inventory = append(inventory, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read table inventory", err)
	}

	return inventory, nil
}

// SeedIfEmpty inserts the inventory only when the tables relation is empty,
// so repeated startups leave an already-seeded store untouched. Returns
// whether a seed happened.
func (r *TableRepository) SeedIfEmpty(ctx context.Context, inventory []table.Table) (bool, error) {
	var present bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tables)`).Scan(&present); err != nil {
		return false, infra.WrapRepoErr("failed to check table inventory", err)
	}
	if present {
		return false, nil
	}

	for _, t := range inventory {
		_, err := r.db.Exec(ctx,
			`INSERT INTO tables (id, seats) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`,
			int32(t.ID()), t.Seats(),
		)
		if err != nil {
			return false, infra.WrapRepoErr("failed to seed table inventory", err)
		}
	}
	return true, nil
}
