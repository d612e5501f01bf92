package queries

import (
	"context"

	"hotelier/internal/domain/reservation"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
)

// AvailabilityQueries is the read-only side of conflict detection: pure
// lookups against committed reservation state, safe to call repeatedly.
// The write-side availability check runs inside the create transaction.
type AvailabilityQueries interface {
	IsAvailable(ctx context.Context, roomNumber string, period reservation.StayPeriod) (bool, error)
	ListAvailableRooms(ctx context.Context, period reservation.StayPeriod, minCapacity *int) ([]*RoomView, error)
}

type AvailabilityReadStore interface {
	HasBlockingOverlap(ctx context.Context, roomNumber string, period reservation.StayPeriod) (bool, error)
	FindAvailableRooms(ctx context.Context, period reservation.StayPeriod, minCapacity *int) ([]*RoomView, error)
}

type availabilityQueriesImpl struct {
	store AvailabilityReadStore
}

func NewAvailabilityQueries(store AvailabilityReadStore) AvailabilityQueries {
	return &availabilityQueriesImpl{store: store}
}

func (q *availabilityQueriesImpl) IsAvailable(ctx context.Context, roomNumber string, period reservation.StayPeriod) (bool, error) {
	conflict, err := q.store.HasBlockingOverlap(ctx, roomNumber, period)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return !conflict, nil
}

func (q *availabilityQueriesImpl) ListAvailableRooms(ctx context.Context, period reservation.StayPeriod, minCapacity *int) ([]*RoomView, error) {
	views, err := q.store.FindAvailableRooms(ctx, period, minCapacity)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return views, nil
}
