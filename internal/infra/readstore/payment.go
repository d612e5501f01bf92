package readstore

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/infra/db"
	"hotelier/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (s *PaymentReadStore) FindAll(ctx context.Context, reservationID *uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, reservation_id, amount_cents, method, status, paid_at
		FROM payments
		WHERE ($1::uuid IS NULL OR reservation_id = $1)
		ORDER BY paid_at, id`,
		reservationID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	views := []*queries.PaymentView{}
	for rows.Next() {
		var view queries.PaymentView
		if err := rows.Scan(&view.ID, &view.ReservationID, &view.AmountCents, &view.Method, &view.Status, &view.PaidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return views, nil
}
