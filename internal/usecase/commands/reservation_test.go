//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"

	"hotelier/internal/domain/guest"
	"hotelier/internal/domain/reservation"
	"hotelier/internal/domain/room"
	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/internal/usecase/shared"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reservationFixture struct {
	store *fake.Store
	cmd   commands.ReservationCommands
	guest *guest.Guest
}

func newReservationFixture(t *testing.T) *reservationFixture {
	t.Helper()
	store := fake.NewStore()

	rm, err := builder.NewRoomBuilder().WithPriceCents(15000).BuildDomain()
	require.NoError(t, err)
	store.SeedRoom(rm)

	g, err := builder.NewGuestBuilder().BuildDomain()
	require.NoError(t, err)
	store.SeedGuest(g)

	cmd := commands.NewReservationCommands(store,
		queries.NewReservationQueries(store.ReservationReads()),
		queries.NewPaymentQueries(store.PaymentReads()))

	return &reservationFixture{store: store, cmd: cmd, guest: g}
}

func (f *reservationFixture) create(t *testing.T, mutate func(*builder.ReservationBuilder)) *queries.ReservationView {
	t.Helper()
	b := builder.NewReservationBuilder().WithGuestID(f.guest.ID())
	if mutate != nil {
		mutate(b)
	}
	view, err := f.cmd.Create(context.Background(), b.BuildParams())
	require.NoError(t, err)
	return view
}

func TestCreateReservation(t *testing.T) {
	ctx := context.Background()

	t.Run("freezes the total at the current nightly rate", func(t *testing.T) {
		f := newReservationFixture(t)

		view := f.create(t, func(b *builder.ReservationBuilder) {
			b.WithDates("2026-09-01", "2026-09-04")
		})
		assert.Equal(t, "confirmed", view.Status)
		assert.Equal(t, 3, view.Nights)
		assert.Equal(t, int64(45000), view.TotalCents)
		assert.Equal(t, "201", view.RoomNumber)
		assert.Equal(t, "Alice Smith", view.GuestName)
	})

	t.Run("overlapping dates on the same room conflict", func(t *testing.T) {
		f := newReservationFixture(t)
		f.create(t, func(b *builder.ReservationBuilder) { b.WithDates("2026-09-10", "2026-09-15") })

		_, err := f.cmd.Create(ctx, builder.NewReservationBuilder().
			WithGuestID(f.guest.ID()).
			WithDates("2026-09-12", "2026-09-14").
			BuildParams())
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("back to back stays do not conflict", func(t *testing.T) {
		f := newReservationFixture(t)
		f.create(t, func(b *builder.ReservationBuilder) { b.WithDates("2026-09-10", "2026-09-15") })
		f.create(t, func(b *builder.ReservationBuilder) { b.WithDates("2026-09-15", "2026-09-18") })
		f.create(t, func(b *builder.ReservationBuilder) { b.WithDates("2026-09-08", "2026-09-10") })
	})

	t.Run("cancelled stays free their dates", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)

		_, err := f.cmd.Cancel(ctx, view.ID)
		require.NoError(t, err)

		f.create(t, nil)
	})

	t.Run("validation and lookup failures", func(t *testing.T) {
		f := newReservationFixture(t)

		cases := []struct {
			name   string
			mutate func(*builder.ReservationBuilder)
			errIs  error
		}{
			{
				name:   "reversed dates",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("2026-09-04", "2026-09-01") },
				errIs:  errs.ErrInvalidStayPeriod,
			},
			{
				name:   "zero nights",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("2026-09-01", "2026-09-01") },
				errIs:  errs.ErrInvalidStayPeriod,
			},
			{
				name:   "malformed date",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("Sept 1", "2026-09-04") },
				errIs:  errs.ErrInvalidStayPeriod,
			},
			{
				name:   "unknown payment hint",
				mutate: func(b *builder.ReservationBuilder) { b.WithMethodHint("cheque") },
				errIs:  errs.ErrInvalidPaymentMethod,
			},
			{
				name:   "unknown room",
				mutate: func(b *builder.ReservationBuilder) { b.WithRoomNumber("999") },
				errIs:  errs.ErrRoomNotFound,
			},
			{
				name:   "unknown guest",
				mutate: func(b *builder.ReservationBuilder) { b.WithGuestID(uuid.New()) },
				errIs:  errs.ErrGuestNotFound,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewReservationBuilder().WithGuestID(f.guest.ID())
				tc.mutate(b)
				_, err := f.cmd.Create(ctx, b.BuildParams())
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("room in maintenance is unavailable", func(t *testing.T) {
		f := newReservationFixture(t)
		roomCmd := newRoomCommands(f.store, testClock())
		_, err := roomCmd.SetMaintenance(ctx, "201", true)
		require.NoError(t, err)

		_, err = f.cmd.Create(ctx, builder.NewReservationBuilder().
			WithGuestID(f.guest.ID()).
			BuildParams())
		assert.ErrorIs(t, err, errs.ErrRoomUnavailable)
	})

	t.Run("concurrent creates admit exactly one booking", func(t *testing.T) {
		f := newReservationFixture(t)

		const attempts = 16
		var wg sync.WaitGroup
		errsCh := make(chan error, attempts)
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.cmd.Create(ctx, builder.NewReservationBuilder().
					WithGuestID(f.guest.ID()).
					WithDates("2026-09-01", "2026-09-04").
					BuildParams())
				errsCh <- err
			}()
		}
		wg.Wait()
		close(errsCh)

		succeeded, conflicted := 0, 0
		for err := range errsCh {
			switch {
			case err == nil:
				succeeded++
			default:
				require.ErrorIs(t, err, errs.ErrRoomUnavailable)
				conflicted++
			}
		}
		assert.Equal(t, 1, succeeded)
		assert.Equal(t, attempts-1, conflicted)
	})
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("moves the reservation and the room together", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)

		checkedIn, err := f.cmd.CheckIn(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "checked_in", checkedIn.Status)
		assert.Equal(t, room.StatusOccupied, f.store.Room("201").Status())
	})

	t.Run("cancelled reservation cannot check in", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)
		_, err := f.cmd.Cancel(ctx, view.ID)
		require.NoError(t, err)

		_, err = f.cmd.CheckIn(ctx, view.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, room.StatusAvailable, f.store.Room("201").Status())
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newReservationFixture(t)
		_, err := f.cmd.CheckIn(ctx, uuid.New())
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()
	card := "card"

	checkIn := func(t *testing.T, f *reservationFixture, id uuid.UUID) {
		t.Helper()
		_, err := f.cmd.CheckIn(ctx, id)
		require.NoError(t, err)
	}

	t.Run("records one payment for the frozen total", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, func(b *builder.ReservationBuilder) {
			b.WithDates("2026-09-01", "2026-09-04")
		})
		checkIn(t, f, view.ID)

		result, err := f.cmd.CheckOut(ctx, view.ID, &card)
		require.NoError(t, err)
		assert.Equal(t, "checked_out", result.Reservation.Status)
		require.NotNil(t, result.Payment)
		assert.Equal(t, int64(45000), result.Payment.AmountCents)
		assert.Equal(t, "card", result.Payment.Method)
		assert.Equal(t, "recorded", result.Payment.Status)
		assert.Equal(t, room.StatusAvailable, f.store.Room("201").Status())
		assert.Equal(t, 1, f.store.PaymentCount(view.ID))
	})

	t.Run("falls back to the stored method hint", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, func(b *builder.ReservationBuilder) { b.WithMethodHint("online") })
		checkIn(t, f, view.ID)

		result, err := f.cmd.CheckOut(ctx, view.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, result.Payment)
		assert.Equal(t, "online", result.Payment.Method)
	})

	t.Run("explicit method wins over the hint", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, func(b *builder.ReservationBuilder) { b.WithMethodHint("online") })
		checkIn(t, f, view.ID)

		result, err := f.cmd.CheckOut(ctx, view.ID, &card)
		require.NoError(t, err)
		require.NotNil(t, result.Payment)
		assert.Equal(t, "card", result.Payment.Method)
	})

	t.Run("no method and no hint leaves everything untouched", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)
		checkIn(t, f, view.ID)

		_, err := f.cmd.CheckOut(ctx, view.ID, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentMethod)

		assert.Equal(t, reservation.StatusCheckedIn, f.store.Reservation(view.ID).Status())
		assert.Equal(t, room.StatusOccupied, f.store.Room("201").Status())
		assert.Equal(t, 0, f.store.PaymentCount(view.ID))
	})

	t.Run("second check-out is an invalid transition", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)
		checkIn(t, f, view.ID)

		_, err := f.cmd.CheckOut(ctx, view.ID, &card)
		require.NoError(t, err)

		_, err = f.cmd.CheckOut(ctx, view.ID, &card)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, 1, f.store.PaymentCount(view.ID))
	})

	t.Run("existing payment aborts the whole check-out", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)
		checkIn(t, f, view.ID)

		_, err := f.cmd.CheckOut(ctx, view.ID, &card)
		require.NoError(t, err)

		// force the status back as if the transition had been replayed
		err = f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Reservations().UpdateStatus(ctx, view.ID, reservation.StatusCheckedIn)
		})
		require.NoError(t, err)

		_, err = f.cmd.CheckOut(ctx, view.ID, &card)
		assert.ErrorIs(t, err, errs.ErrDuplicatePayment)
		assert.Equal(t, 1, f.store.PaymentCount(view.ID))
		// the rollback also restored the forced status
		assert.Equal(t, reservation.StatusCheckedIn, f.store.Reservation(view.ID).Status())
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("leaves the room status alone", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)

		cancelled, err := f.cmd.Cancel(ctx, view.ID)
		require.NoError(t, err)
		assert.Equal(t, "cancelled", cancelled.Status)
		assert.Equal(t, room.StatusAvailable, f.store.Room("201").Status())
	})

	t.Run("checked-in reservation cannot cancel", func(t *testing.T) {
		f := newReservationFixture(t)
		view := f.create(t, nil)
		_, err := f.cmd.CheckIn(ctx, view.ID)
		require.NoError(t, err)

		_, err = f.cmd.Cancel(ctx, view.ID)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
