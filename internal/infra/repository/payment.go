package repository

import (
	"context"

	"hotelier/internal/domain/payment"
	"hotelier/internal/infra"
	"hotelier/internal/infra/db"

	"github.com/google/uuid"
)

type PaymentRepository struct {
	db db.DBTX
}

func NewPaymentRepository(dbtx db.DBTX) *PaymentRepository {
	return &PaymentRepository{db: dbtx}
}

// The unique index on reservation_id enforces exactly-once recording even
// when two check-out retries race; the second insert surfaces as
// KindDuplicateKey.
func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, reservation_id, amount_cents, method, status)
		VALUES ($1, $2, $3, $4, $5)`,
		p.ID(), p.ReservationID(), p.AmountCents(), p.Method().String(), p.Status().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) ExistsForReservation(ctx context.Context, reservationID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM payments WHERE reservation_id = $1)`, reservationID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check payment existence", err)
	}
	return exists, nil
}
