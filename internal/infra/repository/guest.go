package repository

import (
	"context"

	"hotelier/internal/domain/guest"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type GuestRepository struct {
	db db.DBTX
}

func NewGuestRepository(dbtx db.DBTX) *GuestRepository {
	return &GuestRepository{db: dbtx}
}

// A repeat booking with a known phone number reuses the guest record and
// refreshes the name; the email is only replaced when a new one is given.
func (r *GuestRepository) UpsertByPhone(ctx context.Context, g *guest.Guest) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO guests (id, name, phone, email)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (phone) DO UPDATE
		SET name = EXCLUDED.name,
		    email = COALESCE(EXCLUDED.email, guests.email)
		RETURNING id`,
		g.ID(), g.Name(), g.Phone(), g.Email(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert guest", err)
	}
	return id, nil
}

func (r *GuestRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM guests WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check guest existence", err)
	}
	return exists, nil
}
