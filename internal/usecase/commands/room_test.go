//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/infra/repository"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/commands"
	"room-booking/tests/common/builder"
	commandsmock "room-booking/tests/mock/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	db       *memdb.DB
	rooms    commands.RoomCommands
	bookings commands.BookingCommands
}

func newFixture(policy booking.OverlapPolicy) *fixture {
	db := memdb.New()
	clk := clock.NewMockClock(fixedNow)
	roomRepo := repository.NewRoomRepository()
	bookingRepo := repository.NewBookingRepository()
	return &fixture{
		db:       db,
		rooms:    commands.NewRoomCommands(db, roomRepo, clk),
		bookings: commands.NewBookingCommands(db, roomRepo, bookingRepo, booking.NewAvailability(policy), clk),
	}
}

func TestRoomCommands_CreateRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("success: ids start at 1 and increase", func(t *testing.T) {
		f := newFixture(booking.PolicyLegacy)

		first, err := f.rooms.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(1), first.RoomID)

		second, err := f.rooms.CreateRoom(ctx, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) {
			b.Name = "Board Room"
		}).BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(2), second.RoomID)

		rooms, _ := f.db.Counts()
		assert.Equal(t, 2, rooms)
	})

	t.Run("duplicate names are allowed", func(t *testing.T) {
		f := newFixture(booking.PolicyLegacy)
		req := builder.NewRoomBuilder().BuildCreateRequestDTO()

		_, err := f.rooms.CreateRoom(ctx, req)
		require.NoError(t, err)
		_, err = f.rooms.CreateRoom(ctx, req)
		require.NoError(t, err)
	})

	invalid := []struct {
		name  string
		req   reqdto.CreateRoomRequest
		errIs error
	}{
		{
			name:  "zero seats",
			req:   builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Seats = 0 }).BuildCreateRequestDTO(),
			errIs: room.ErrNonPositiveSeats,
		},
		{
			name:  "negative price",
			req:   builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.PricePerHour = -1 }).BuildCreateRequestDTO(),
			errIs: room.ErrNonPositivePrice,
		},
		{
			name:  "missing seats",
			req:   reqdto.CreateRoomRequest{RoomName: "A", Amenities: reqdto.Amenities{"TV"}, PricePerHour: ptr.Of(10.0)},
			errIs: room.ErrNonPositiveSeats,
		},
		{
			name:  "empty amenities",
			req:   builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Amenities = []string{} }).BuildCreateRequestDTO(),
			errIs: room.ErrNoAmenities,
		},
	}
	for _, c := range invalid {
		t.Run("validation: "+c.name, func(t *testing.T) {
			f := newFixture(booking.PolicyLegacy)

			res, err := f.rooms.CreateRoom(ctx, c.req)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, commands.ErrValidation))
			assert.ErrorIs(t, err, c.errIs)

			rooms, _ := f.db.Counts()
			assert.Zero(t, rooms)
		})
	}

	t.Run("rejected request consumes no id", func(t *testing.T) {
		f := newFixture(booking.PolicyLegacy)
		_, err := f.rooms.CreateRoom(ctx, builder.NewRoomBuilder().With(func(b *builder.RoomBuilder) { b.Seats = 0 }).BuildCreateRequestDTO())
		require.Error(t, err)

		res, err := f.rooms.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateRequestDTO())
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.RoomID)
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tx := commandsmock.NewMockTxManager(ctrl)
		repo := commandsmock.NewMockRoomRepository(ctrl)
		tx.EXPECT().WriteTx(gomock.Any(), gomock.Any()).Return(errors.New("disk on fire"))

		cmds := commands.NewRoomCommands(tx, repo, clock.NewMockClock(fixedNow))
		res, err := cmds.CreateRoom(ctx, builder.NewRoomBuilder().BuildCreateRequestDTO())
		assert.Nil(t, res)
		assert.True(t, errs.Is(err, commands.ErrStoreFailure))
		assert.False(t, errs.Is(err, commands.ErrValidation))
	})
}
