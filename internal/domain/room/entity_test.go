//go:build unit

package room_test

import (
	"math"
	"strings"
	"testing"

	"room-booking/internal/domain/room"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.RoomBuilder)
	errIs  error
}

func TestRoom(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Zero(t, actual.ID(), "id is assigned on insert")
		assert.Equal(t, "Conference Room Alpha", actual.Name())
		assert.Equal(t, 10, actual.Seats())
		assert.Equal(t, []string{"Projector", "Whiteboard"}, actual.Amenities().Values())
		assert.Equal(t, 50.0, actual.PricePerHour())
		assert.False(t, actual.CreatedAt().IsZero())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "empty name", mutate: func(b *builder.RoomBuilder) { b.Name = "" }, errIs: room.ErrEmptyRoomName},
			{name: "whitespace only name", mutate: func(b *builder.RoomBuilder) { b.Name = "   " }},
			{name: "long name", mutate: func(b *builder.RoomBuilder) { b.Name = strings.Repeat("a", 1000) }},
		})
	})

	t.Run("seats validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "one seat", mutate: func(b *builder.RoomBuilder) { b.Seats = 1 }},
			{name: "zero seats", mutate: func(b *builder.RoomBuilder) { b.Seats = 0 }, errIs: room.ErrNonPositiveSeats},
			{name: "negative seats", mutate: func(b *builder.RoomBuilder) { b.Seats = -3 }, errIs: room.ErrNonPositiveSeats},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "fractional price", mutate: func(b *builder.RoomBuilder) { b.PricePerHour = 0.5 }},
			{name: "zero price", mutate: func(b *builder.RoomBuilder) { b.PricePerHour = 0 }, errIs: room.ErrNonPositivePrice},
			{name: "negative price", mutate: func(b *builder.RoomBuilder) { b.PricePerHour = -10 }, errIs: room.ErrNonPositivePrice},
			{name: "NaN price", mutate: func(b *builder.RoomBuilder) { b.PricePerHour = math.NaN() }, errIs: room.ErrNonPositivePrice},
		})
	})

	t.Run("amenities validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "single amenity", mutate: func(b *builder.RoomBuilder) { b.Amenities = []string{"TV"} }},
			{name: "nil amenities", mutate: func(b *builder.RoomBuilder) { b.Amenities = nil }, errIs: room.ErrNoAmenities},
			{name: "empty list", mutate: func(b *builder.RoomBuilder) { b.Amenities = []string{} }, errIs: room.ErrNoAmenities},
			{name: "only blank entries", mutate: func(b *builder.RoomBuilder) { b.Amenities = []string{"", "  "} }, errIs: room.ErrNoAmenities},
		})
	})

	t.Run("name is kept verbatim and amenities are trimmed", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Name = "  Board Room  "
			b.Amenities = []string{" TV ", "", "Whiteboard"}
		}).BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "  Board Room  ", actual.Name())
		assert.Equal(t, []string{"TV", "Whiteboard"}, actual.Amenities().Values())
		assert.Equal(t, "TV, Whiteboard", actual.Amenities().String())
	})

	t.Run("WithID assigns a positive id without touching the original", func(t *testing.T) {
		original, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		stored, err := original.WithID(7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), stored.ID())
		assert.Zero(t, original.ID())

		_, err = original.WithID(0)
		assert.ErrorIs(t, err, room.ErrNonPositiveRoomID)
	})

	t.Run("Values returns a copy", func(t *testing.T) {
		actual, err := builder.NewRoomBuilder().BuildDomain()
		require.NoError(t, err)

		values := actual.Amenities().Values()
		values[0] = "changed"
		assert.Equal(t, "Projector", actual.Amenities().Values()[0])
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewRoomBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
