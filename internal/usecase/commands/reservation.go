package commands

import (
	"context"

	"hotelier/internal/domain/payment"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/infra"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateReservationParams struct {
	RoomNumber string
	GuestID    uuid.UUID
	CheckIn    string
	CheckOut   string
	MethodHint *string
}

type CheckOutResult struct {
	Reservation *queries.ReservationView
	Payment     *queries.PaymentView
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error)
	CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
	// CheckOut records the payment in the same transaction that closes the
	// reservation; method falls back to the hint stored at creation.
	CheckOut(ctx context.Context, id uuid.UUID, method *string) (*CheckOutResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	paymentQueries     queries.PaymentQueries
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	paymentQueries queries.PaymentQueries,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		paymentQueries:     paymentQueries,
	}
}

// Create runs the availability read and the reservation insert inside one
// transaction holding the room's row lock, so two overlapping requests for
// the same room cannot both pass the check.
func (c *reservationCommandsImpl) Create(ctx context.Context, params CreateReservationParams) (*queries.ReservationView, error) {
	period, err := reservation.ParseStayPeriod(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidStayPeriod)
	}

	if params.MethodHint != nil && !payment.Method(*params.MethodHint).IsValid() {
		return nil, errs.ErrInvalidPaymentMethod
	}

	var reservationID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := tx.Rooms().FindByNumberForUpdate(ctx, params.RoomNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrRoomNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if rm.Status() == room.StatusMaintenance {
			return errs.ErrRoomUnavailable
		}

		exists, err := tx.Guests().Exists(ctx, params.GuestID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !exists {
			return errs.ErrGuestNotFound
		}

		conflict, err := tx.Reservations().HasBlockingOverlap(ctx, rm.ID(), period)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if conflict {
			return errs.ErrRoomUnavailable
		}

		rate, err := reservation.NewMoney(rm.PriceCents())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidRoom)
		}

		res := reservation.NewReservation(reservation.RoomSpec{
			ID:          rm.ID(),
			Number:      rm.Number(),
			NightlyRate: rate,
		}, params.GuestID, period, params.MethodHint)

		reservationID, err = tx.Reservations().Create(ctx, res)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, reservationID)
}

func (c *reservationCommandsImpl) CheckIn(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.CheckIn(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Room status follows the reservation inside the same transaction
		// so the two can never drift.
		if err := tx.Rooms().UpdateStatus(ctx, res.RoomID(), room.StatusOccupied); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, id)
}

func (c *reservationCommandsImpl) CheckOut(ctx context.Context, id uuid.UUID, method *string) (*CheckOutResult, error) {
	var paymentID uuid.UUID
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		m, err := resolveMethod(method, res.MethodHint())
		if err != nil {
			return err
		}

		if err := res.CheckOut(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Rooms().UpdateStatus(ctx, res.RoomID(), room.StatusAvailable); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		pay, err := payment.NewPayment(res.ID(), res.Total().Cents(), m)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidPaymentMethod)
		}
		if err := tx.Payments().Create(ctx, pay); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrDuplicatePayment)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		paymentID = pay.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	resView, err := c.reservationQueries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	payViews, err := c.paymentQueries.List(ctx, &id)
	if err != nil {
		return nil, err
	}
	result := &CheckOutResult{Reservation: resView}
	for _, pv := range payViews {
		if pv.ID == paymentID {
			result.Payment = pv
			break
		}
	}
	return result, nil
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := findForUpdate(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := res.Cancel(); err != nil {
			return errs.Mark(err, errs.ErrInvalidTransition)
		}

		// Cancellation frees future dates only; the room's current status
		// belongs to whoever is checked in now and stays untouched.
		if err := tx.Reservations().UpdateStatus(ctx, res.ID(), res.Status()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.reservationQueries.GetByID(ctx, id)
}

func findForUpdate(ctx context.Context, tx shared.Tx, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

func resolveMethod(explicit, hint *string) (payment.Method, error) {
	raw := explicit
	if raw == nil {
		raw = hint
	}
	if raw == nil {
		return "", errs.ErrInvalidPaymentMethod
	}
	m := payment.Method(*raw)
	if !m.IsValid() {
		return "", errs.ErrInvalidPaymentMethod
	}
	return m, nil
}
