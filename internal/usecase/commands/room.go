package commands

import (
	"context"

	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/clock"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
)

type AddRoomParams struct {
	Number     string
	Type       string
	PriceCents int64
	Capacity   int
	Amenities  []string
}

type RoomCommands interface {
	Add(ctx context.Context, params AddRoomParams) (*queries.RoomView, error)
	// SetMaintenance refuses to take a room out of service while an active
	// reservation still covers today or a future date.
	SetMaintenance(ctx context.Context, number string, inMaintenance bool) (*queries.RoomView, error)
}

type roomCommandsImpl struct {
	uow         shared.UnitOfWork
	roomQueries queries.RoomQueries
	clock       clock.Clock
}

func NewRoomCommands(uow shared.UnitOfWork, roomQueries queries.RoomQueries, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		uow:         uow,
		roomQueries: roomQueries,
		clock:       clk,
	}
}

func (c *roomCommandsImpl) Add(ctx context.Context, params AddRoomParams) (*queries.RoomView, error) {
	rm, err := room.NewRoom(params.Number, room.Type(params.Type), params.PriceCents, params.Capacity, params.Amenities)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidRoom)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().Create(ctx, rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicateRoom)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.roomQueries.GetByNumber(ctx, rm.Number())
}

func (c *roomCommandsImpl) SetMaintenance(ctx context.Context, number string, inMaintenance bool) (*queries.RoomView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumberForUpdate(ctx, number)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if inMaintenance {
			booked, err := tx.Reservations().HasBlockingStayEndingAfter(ctx, rm.ID(), clock.Today(c.clock))
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if booked {
				return errs.Mark(errs.New("room has active reservations"), errs.ErrInvalidTransition)
			}
			if err := tx.Rooms().UpdateStatus(ctx, rm.ID(), room.StatusMaintenance); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			return nil
		}

		// Clearing maintenance never overwrites occupancy owned by a
		// checked-in reservation.
		if rm.Status() != room.StatusMaintenance {
			return nil
		}
		if err := tx.Rooms().UpdateStatus(ctx, rm.ID(), room.StatusAvailable); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.roomQueries.GetByNumber(ctx, number)
}
