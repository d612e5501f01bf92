package queries

import (
	"context"

	"hotelier/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	List(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	FindAll(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) List(ctx context.Context, reservationID *uuid.UUID) ([]*PaymentView, error) {
	views, err := q.store.FindAll(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
