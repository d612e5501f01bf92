package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationSelect = `
	SELECT res.id, res.room_id, rm.room_number, res.guest_id, g.name, g.phone,
	       res.check_in_date, res.check_out_date, res.status, res.total_cents,
	       res.method_hint, res.created_at
	FROM reservations res
	JOIN rooms rm ON rm.id = res.room_id
	JOIN guests g ON g.id = res.guest_id`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := s.db.QueryRow(ctx, reservationSelect+` WHERE res.id = $1`, id)
	view, err := scanReservationView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) FindAll(ctx context.Context, filter queries.ReservationFilter) ([]*queries.ReservationView, error) {
	rows, err := s.db.Query(ctx, reservationSelect+`
		WHERE ($1::text IS NULL OR res.status = $1)
		  AND ($2::text IS NULL OR rm.room_number = $2)
		ORDER BY res.created_at, res.id`,
		filter.Status, filter.RoomNumber,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return views, nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	if err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomNumber, &view.GuestID, &view.GuestName, &view.GuestPhone,
		&view.CheckInDate, &view.CheckOutDate, &view.Status, &view.TotalCents,
		&view.MethodHint, &view.CreatedAt,
	); err != nil {
		return nil, err
	}
	view.Nights = int(view.CheckOutDate.Sub(view.CheckInDate).Hours() / 24)
	return &view, nil
}
