//go:build unit

package payment_test

import (
	"testing"

	"hotelier/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment(t *testing.T) {
	reservationID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		p, err := payment.NewPayment(reservationID, 45000, payment.MethodCard)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, p.ID())
		assert.Equal(t, reservationID, p.ReservationID())
		assert.Equal(t, int64(45000), p.AmountCents())
		assert.Equal(t, payment.MethodCard, p.Method())
		assert.Equal(t, payment.StatusRecorded, p.Status())
	})

	cases := []struct {
		name   string
		amount int64
		method payment.Method
		errIs  error
	}{
		{name: "cash", amount: 8000, method: payment.MethodCash},
		{name: "online", amount: 8000, method: payment.MethodOnline},
		{name: "zero amount is allowed", amount: 0, method: payment.MethodCash},
		{name: "unknown method", amount: 8000, method: payment.Method("cheque"), errIs: payment.ErrInvalidMethod},
		{name: "empty method", amount: 8000, method: payment.Method(""), errIs: payment.ErrInvalidMethod},
		{name: "negative amount", amount: -1, method: payment.MethodCash, errIs: payment.ErrNegativeAmount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := payment.NewPayment(reservationID, tc.amount, tc.method)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMethodIsValid(t *testing.T) {
	assert.True(t, payment.MethodCash.IsValid())
	assert.True(t, payment.MethodCard.IsValid())
	assert.True(t, payment.MethodOnline.IsValid())
	assert.False(t, payment.Method("bitcoin").IsValid())
}
