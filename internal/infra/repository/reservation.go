package repository

import (
	"context"
	"errors"

	"table-booking/internal/domain/reservation"
	"table-booking/internal/domain/table"
	"table-booking/internal/infra"
	"table-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// createIfFreeSQL inserts only when the chosen table has no confirmed
// reservation starting inside the requested window. All bookings share the
// same fixed seating grid, so the start-anchored check is the exact overlap
// rule; the partial unique index on (table_id, starts_at) backstops it for
// two inserts racing past the NOT EXISTS at the same grid slot.
const createIfFreeSQL = `
INSERT INTO reservations (id, guest_name, starts_at, party_size, table_id, status, created_at, updated_at)
SELECT $1, $2, $3, $4, $5, $6, $7, $7
WHERE NOT EXISTS (
    SELECT 1 FROM reservations
    WHERE table_id = $5
      AND status = $6
      AND starts_at >= $3
      AND starts_at < $8
)
RETURNING id`

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(db db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) CreateIfFree(ctx context.Context, res *reservation.Reservation) error {
	window := res.Window()

	var insertedID uuid.UUID
	err := r.db.QueryRow(ctx, createIfFreeSQL,
		res.ID(),
		res.GuestName().String(),
		window.Start(),
		res.PartySize().Int(),
		int32(res.TableID()),
		res.Status().String(),
		res.CreatedAt(),
		window.End(),
	).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return infra.WrapRepoErr("table already booked for an overlapping window", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}

	return nil
}

func (r *ReservationRepository) OccupiedTableIDs(ctx context.Context, window reservation.SeatingWindow) (map[table.ID]struct{}, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT table_id FROM reservations
		WHERE status = $1 AND starts_at >= $2 AND starts_at < $3`,
		reservation.StatusConfirmed.String(), window.Start(), window.End(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to fetch occupied tables", err)
	}
	defer rows.Close()

	occupied := make(map[table.ID]struct{})
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan occupied table id", err)
		}
		occupied[table.ID(id)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read occupied tables", err)
	}

	return occupied, nil
}

// CancelConfirmed flips status to cancelled only when the row is still
// confirmed, so concurrent cancels of the same reservation cannot
// double-apply: exactly one wins, the rest see not-found.
func (r *ReservationRepository) CancelConfirmed(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		reservation.StatusCancelled.String(), id, reservation.StatusConfirmed.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no confirmed reservation to cancel", nil, infra.KindNotFound)
	}

	return nil
}
