//go:build unit

package reservation_test

import (
	"testing"

	"hotelier/internal/domain/reservation"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	t.Run("freezes total at creation rate", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().
			WithDates("2026-09-01", "2026-09-04").
			WithNightlyRate(15000).
			BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, 3, res.Period().Nights())
		assert.Equal(t, int64(45000), res.Total().Cents())
	})

	t.Run("carries the payment method hint", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().WithMethodHint("card").BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, res.MethodHint())
		assert.Equal(t, "card", *res.MethodHint())
	})

	t.Run("single night stay", func(t *testing.T) {
		res, err := builder.NewReservationBuilder().
			WithDates("2026-09-01", "2026-09-02").
			WithNightlyRate(8000).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, int64(8000), res.Total().Cents())
	})
}

func TestReservationTransitions(t *testing.T) {
	build := func(t *testing.T, status string) *reservation.Reservation {
		t.Helper()
		res, err := builder.NewReservationBuilder().WithStatus(status).BuildDomain()
		require.NoError(t, err)
		return res
	}

	cases := []struct {
		name  string
		from  string
		apply func(*reservation.Reservation) error
		to    reservation.Status
		errIs error
	}{
		{name: "confirmed to checked_in", from: "confirmed", apply: (*reservation.Reservation).CheckIn, to: reservation.StatusCheckedIn},
		{name: "confirmed to cancelled", from: "confirmed", apply: (*reservation.Reservation).Cancel, to: reservation.StatusCancelled},
		{name: "checked_in to checked_out", from: "checked_in", apply: (*reservation.Reservation).CheckOut, to: reservation.StatusCheckedOut},
		{name: "confirmed cannot check out", from: "confirmed", apply: (*reservation.Reservation).CheckOut, errIs: reservation.ErrInvalidTransition},
		{name: "checked_in cannot cancel", from: "checked_in", apply: (*reservation.Reservation).Cancel, errIs: reservation.ErrInvalidTransition},
		{name: "checked_in cannot check in again", from: "checked_in", apply: (*reservation.Reservation).CheckIn, errIs: reservation.ErrInvalidTransition},
		{name: "checked_out is terminal for check in", from: "checked_out", apply: (*reservation.Reservation).CheckIn, errIs: reservation.ErrInvalidTransition},
		{name: "checked_out is terminal for check out", from: "checked_out", apply: (*reservation.Reservation).CheckOut, errIs: reservation.ErrInvalidTransition},
		{name: "checked_out is terminal for cancel", from: "checked_out", apply: (*reservation.Reservation).Cancel, errIs: reservation.ErrInvalidTransition},
		{name: "cancelled is terminal for check in", from: "cancelled", apply: (*reservation.Reservation).CheckIn, errIs: reservation.ErrInvalidTransition},
		{name: "cancelled is terminal for check out", from: "cancelled", apply: (*reservation.Reservation).CheckOut, errIs: reservation.ErrInvalidTransition},
		{name: "cancelled is terminal for cancel", from: "cancelled", apply: (*reservation.Reservation).Cancel, errIs: reservation.ErrInvalidTransition},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := build(t, tc.from)
			err := tc.apply(res)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Equal(t, reservation.Status(tc.from), res.Status(), "failed transition must not change status")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.to, res.Status())
		})
	}
}

func TestStatusPredicates(t *testing.T) {
	assert.True(t, reservation.StatusConfirmed.IsBlocking())
	assert.True(t, reservation.StatusCheckedIn.IsBlocking())
	assert.False(t, reservation.StatusCheckedOut.IsBlocking())
	assert.False(t, reservation.StatusCancelled.IsBlocking())

	assert.False(t, reservation.StatusConfirmed.IsTerminal())
	assert.False(t, reservation.StatusCheckedIn.IsTerminal())
	assert.True(t, reservation.StatusCheckedOut.IsTerminal())
	assert.True(t, reservation.StatusCancelled.IsTerminal())

	assert.False(t, reservation.Status("unknown").IsValid())
	assert.ElementsMatch(t,
		[]reservation.Status{reservation.StatusConfirmed, reservation.StatusCheckedIn},
		reservation.BlockingStatuses())
}
