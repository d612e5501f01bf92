package readstore

import (
	"context"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, room_number, room_type, price_per_night_cents, capacity, amenities, status, created_at`

// RoomReadStore serves both the room listing queries and the availability
// search; both read committed state only.
type RoomReadStore struct {
	db db.DBTX
}

func NewRoomReadStore(dbtx db.DBTX) *RoomReadStore {
	return &RoomReadStore{db: dbtx}
}

func (s *RoomReadStore) FindByNumber(ctx context.Context, number string) (*queries.RoomView, error) {
	row := s.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE room_number = $1`, number)
	view, err := scanRoomView(row)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}
	return view, nil
}

func (s *RoomReadStore) FindAll(ctx context.Context, status *room.Status) ([]*queries.RoomView, error) {
	sql := `SELECT ` + roomColumns + ` FROM rooms`
	args := []any{}
	if status != nil {
		sql += ` WHERE status = $1`
		args = append(args, status.String())
	}
	sql += ` ORDER BY room_number`

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

func (s *RoomReadStore) CountByStatus(ctx context.Context) (*queries.RoomStatusSummary, error) {
	var summary queries.RoomStatusSummary
	err := s.db.QueryRow(ctx, `
		SELECT count(*),
		       count(*) FILTER (WHERE status = 'available'),
		       count(*) FILTER (WHERE status = 'occupied'),
		       count(*) FILTER (WHERE status = 'maintenance')
		FROM rooms`,
	).Scan(&summary.Total, &summary.Available, &summary.Occupied, &summary.Maintenance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize room statuses", err)
	}
	return &summary, nil
}

// Same predicate as the write-side overlap check; see
// reservation.StayPeriod.Overlaps.
func (s *RoomReadStore) HasBlockingOverlap(ctx context.Context, roomNumber string, period reservation.StayPeriod) (bool, error) {
	var roomID uuid.UUID
	err := s.db.QueryRow(ctx, `SELECT id FROM rooms WHERE room_number = $1`, roomNumber).Scan(&roomID)
	if err != nil {
		if infra.IsNoRows(err) {
			return false, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return false, infra.WrapRepoErr("failed to resolve room for availability check", err)
	}

	var exists bool
	err = s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
			  AND status IN ('confirmed', 'checked_in')
			  AND check_in_date < $3
			  AND check_out_date > $2
		)`,
		roomID, period.CheckIn(), period.CheckOut(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check availability", err)
	}
	return exists, nil
}

func (s *RoomReadStore) FindAvailableRooms(ctx context.Context, period reservation.StayPeriod, minCapacity *int) ([]*queries.RoomView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT `+roomColumns+`
		FROM rooms r
		WHERE r.status <> 'maintenance'
		  AND ($3::int IS NULL OR r.capacity >= $3)
		  AND NOT EXISTS (
			SELECT 1 FROM reservations res
			WHERE res.room_id = r.id
			  AND res.status IN ('confirmed', 'checked_in')
			  AND res.check_in_date < $2
			  AND res.check_out_date > $1
		  )
		ORDER BY r.room_number`,
		period.CheckIn(), period.CheckOut(), minCapacity,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search available rooms", err)
	}
	defer rows.Close()

	return collectRoomViews(rows)
}

func scanRoomView(row pgx.Row) (*queries.RoomView, error) {
	var view queries.RoomView
	if err := row.Scan(&view.ID, &view.Number, &view.Type, &view.PriceCents, &view.Capacity, &view.Amenities, &view.Status, &view.CreatedAt); err != nil {
		return nil, err
	}
	return &view, nil
}

func collectRoomViews(rows pgx.Rows) ([]*queries.RoomView, error) {
	views := []*queries.RoomView{}
	for rows.Next() {
		view, err := scanRoomView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return views, nil
}
