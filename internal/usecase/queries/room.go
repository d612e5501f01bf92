package queries

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
)

type RoomQueries interface {
	GetByNumber(ctx context.Context, number string) (*RoomView, error)
	List(ctx context.Context, status *room.Status) ([]*RoomView, error)
	StatusSummary(ctx context.Context) (*RoomStatusSummary, error)
}

type RoomReadStore interface {
	FindByNumber(ctx context.Context, number string) (*RoomView, error)
	FindAll(ctx context.Context, status *room.Status) ([]*RoomView, error)
	CountByStatus(ctx context.Context) (*RoomStatusSummary, error)
}

type roomQueriesImpl struct {
	store RoomReadStore
}

func NewRoomQueries(store RoomReadStore) RoomQueries {
	return &roomQueriesImpl{store: store}
}

func (q *roomQueriesImpl) GetByNumber(ctx context.Context, number string) (*RoomView, error) {
	view, err := q.store.FindByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context, status *room.Status) ([]*RoomView, error) {
	views, err := q.store.FindAll(ctx, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (q *roomQueriesImpl) StatusSummary(ctx context.Context) (*RoomStatusSummary, error) {
	summary, err := q.store.CountByStatus(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return summary, nil
}
