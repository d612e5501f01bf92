//go:build unit

package guest_test

import (
	"testing"

	"hotelier/internal/domain/guest"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGuest(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, g.ID())
		assert.Equal(t, "Alice Smith", g.Name())
		assert.Equal(t, "555-0101", g.Phone())
		require.NotNil(t, g.Email())
		assert.Equal(t, "alice@example.com", *g.Email())
	})

	cases := []struct {
		name   string
		mutate func(*builder.GuestBuilder)
		errIs  error
	}{
		{name: "empty name", mutate: func(b *builder.GuestBuilder) { b.WithName("") }, errIs: guest.ErrEmptyName},
		{name: "whitespace name", mutate: func(b *builder.GuestBuilder) { b.WithName("   ") }, errIs: guest.ErrEmptyName},
		{name: "empty phone", mutate: func(b *builder.GuestBuilder) { b.WithPhone("") }, errIs: guest.ErrEmptyPhone},
		{name: "whitespace phone", mutate: func(b *builder.GuestBuilder) { b.WithPhone("  ") }, errIs: guest.ErrEmptyPhone},
		{name: "nil email is allowed", mutate: func(b *builder.GuestBuilder) { b.WithEmail(nil) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewGuestBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("blank email collapses to nil", func(t *testing.T) {
		blank := "   "
		g, err := builder.NewGuestBuilder().WithEmail(&blank).BuildDomain()
		require.NoError(t, err)
		assert.Nil(t, g.Email())
	})

	t.Run("name and phone are trimmed", func(t *testing.T) {
		g, err := builder.NewGuestBuilder().WithName(" Bob ").WithPhone(" 555-0102 ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Bob", g.Name())
		assert.Equal(t, "555-0102", g.Phone())
	})
}
