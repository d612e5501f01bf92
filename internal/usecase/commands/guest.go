package commands

import (
	"context"

	"hotelier/internal/domain/guest"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
)

type RegisterGuestParams struct {
	Name  string
	Phone string
	Email *string
}

type GuestCommands interface {
	// Register upserts by phone number: a returning guest keeps their id.
	Register(ctx context.Context, params RegisterGuestParams) (*queries.GuestView, error)
}

type guestCommandsImpl struct {
	uow          shared.UnitOfWork
	guestQueries queries.GuestQueries
}

func NewGuestCommands(uow shared.UnitOfWork, guestQueries queries.GuestQueries) GuestCommands {
	return &guestCommandsImpl{
		uow:          uow,
		guestQueries: guestQueries,
	}
}

func (c *guestCommandsImpl) Register(ctx context.Context, params RegisterGuestParams) (*queries.GuestView, error) {
	g, err := guest.NewGuest(params.Name, params.Phone, params.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidGuest)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Guests().UpsertByPhone(ctx, g); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.guestQueries.GetByPhone(ctx, g.Phone())
}
