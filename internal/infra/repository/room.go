package repository

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, room_number, room_type, price_per_night_cents, capacity, amenities, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rm.ID(), rm.Number(), rm.RoomType().String(), rm.PriceCents(), rm.Capacity(), rm.Amenities(), rm.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

// FOR UPDATE on the room row is the per-room serialization point: every
// command that reads or rewrites the room's reservation set locks it first.
func (r *RoomRepository) FindByNumberForUpdate(ctx context.Context, number string) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, room_number, room_type, price_per_night_cents, capacity, amenities, status
		FROM rooms
		WHERE room_number = $1
		FOR UPDATE`,
		number,
	)

	var (
		id         uuid.UUID
		num        string
		roomType   string
		priceCents int64
		capacity   int
		amenities  []string
		status     string
	)
	if err := row.Scan(&id, &num, &roomType, &priceCents, &capacity, &amenities, &status); err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by number", err)
	}

	return room.ReconstructRoom(id, num, room.Type(roomType), priceCents, capacity, amenities, room.Status(status)), nil
}

func (r *RoomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status room.Status) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms SET status = $2, updated_at = now() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found for status update", nil, infra.KindNotFound)
	}
	return nil
}
