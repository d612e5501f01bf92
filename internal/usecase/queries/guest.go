package queries

import (
	"context"

	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
)

type GuestQueries interface {
	GetByPhone(ctx context.Context, phone string) (*GuestView, error)
	List(ctx context.Context) ([]*GuestView, error)
}

type GuestReadStore interface {
	FindByPhone(ctx context.Context, phone string) (*GuestView, error)
	FindAll(ctx context.Context) ([]*GuestView, error)
}

type guestQueriesImpl struct {
	store GuestReadStore
}

func NewGuestQueries(store GuestReadStore) GuestQueries {
	return &guestQueriesImpl{store: store}
}

func (q *guestQueriesImpl) GetByPhone(ctx context.Context, phone string) (*GuestView, error) {
	view, err := q.store.FindByPhone(ctx, phone)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrGuestNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *guestQueriesImpl) List(ctx context.Context) ([]*GuestView, error) {
	views, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
