//go:build unit

package room_test

import (
	"testing"

	"hotelier/internal/domain/room"
	"hotelier/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, rm.ID())
		assert.Equal(t, "201", rm.Number())
		assert.Equal(t, room.TypeDouble, rm.RoomType())
		assert.Equal(t, room.StatusAvailable, rm.Status())
	})

	cases := []struct {
		name   string
		mutate func(*builder.RoomBuilder)
		errIs  error
	}{
		{name: "empty number", mutate: func(b *builder.RoomBuilder) { b.WithNumber("") }, errIs: room.ErrEmptyNumber},
		{name: "whitespace number", mutate: func(b *builder.RoomBuilder) { b.WithNumber("   ") }, errIs: room.ErrEmptyNumber},
		{name: "unknown type", mutate: func(b *builder.RoomBuilder) { b.WithType("penthouse") }, errIs: room.ErrInvalidType},
		{name: "negative price", mutate: func(b *builder.RoomBuilder) { b.WithPriceCents(-100) }, errIs: room.ErrNegativePrice},
		{name: "zero price is allowed", mutate: func(b *builder.RoomBuilder) { b.WithPriceCents(0) }},
		{name: "zero capacity", mutate: func(b *builder.RoomBuilder) { b.WithCapacity(0) }, errIs: room.ErrInvalidCapacity},
		{name: "negative capacity", mutate: func(b *builder.RoomBuilder) { b.WithCapacity(-2) }, errIs: room.ErrInvalidCapacity},
		{name: "single type", mutate: func(b *builder.RoomBuilder) { b.WithType("single") }},
		{name: "suite type", mutate: func(b *builder.RoomBuilder) { b.WithType("suite") }},
		{name: "presidential type", mutate: func(b *builder.RoomBuilder) { b.WithType("presidential") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewRoomBuilder()
			tc.mutate(b)
			_, err := b.BuildDomain()
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("amenities are deduplicated and sorted", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().
			WithAmenities("TV", " WiFi ", "AC", "TV", "", "AC").
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, []string{"AC", "TV", "WiFi"}, rm.Amenities())
	})

	t.Run("number is trimmed", func(t *testing.T) {
		rm, err := builder.NewRoomBuilder().WithNumber("  305 ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "305", rm.Number())
	})
}
