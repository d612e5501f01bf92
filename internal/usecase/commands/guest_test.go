//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelier/internal/pkg/errs"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/builder"
	"hotelier/tests/common/fake"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuestCommands(s *fake.Store) commands.GuestCommands {
	return commands.NewGuestCommands(s, queries.NewGuestQueries(s.GuestReads()))
}

func TestRegisterGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new guest", func(t *testing.T) {
		store := fake.NewStore()
		cmd := newGuestCommands(store)

		view, err := cmd.Register(ctx, builder.NewGuestBuilder().BuildParams())
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", view.Name)
		assert.Equal(t, "555-0101", view.Phone)
		require.NotNil(t, view.Email)
		assert.Equal(t, "alice@example.com", *view.Email)
	})

	t.Run("same phone upserts and keeps the id", func(t *testing.T) {
		store := fake.NewStore()
		cmd := newGuestCommands(store)

		first, err := cmd.Register(ctx, builder.NewGuestBuilder().BuildParams())
		require.NoError(t, err)

		second, err := cmd.Register(ctx, builder.NewGuestBuilder().WithName("Alice Jones").BuildParams())
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "Alice Jones", second.Name)
	})

	t.Run("upsert without email keeps the stored one", func(t *testing.T) {
		store := fake.NewStore()
		cmd := newGuestCommands(store)

		_, err := cmd.Register(ctx, builder.NewGuestBuilder().BuildParams())
		require.NoError(t, err)

		view, err := cmd.Register(ctx, builder.NewGuestBuilder().WithEmail(nil).BuildParams())
		require.NoError(t, err)
		require.NotNil(t, view.Email)
		assert.Equal(t, "alice@example.com", *view.Email)
	})

	t.Run("invalid guest is rejected", func(t *testing.T) {
		store := fake.NewStore()
		cmd := newGuestCommands(store)

		_, err := cmd.Register(ctx, builder.NewGuestBuilder().WithName("  ").BuildParams())
		assert.ErrorIs(t, err, errs.ErrInvalidGuest)

		_, err = cmd.Register(ctx, builder.NewGuestBuilder().WithPhone("").BuildParams())
		assert.ErrorIs(t, err, errs.ErrInvalidGuest)
	})
}
