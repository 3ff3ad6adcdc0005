//go:build unit

package repository_test

import (
	"context"
	"testing"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/infra/repository"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingRepository_CreateAndFindByRoom(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository()
	db := memdb.New()

	seed := []*builder.BookingBuilder{
		builder.NewBookingBuilder(),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.RoomID = 2; b.CustomerName = "Alice" }),
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.StartTime, b.EndTime = "13:00", "14:00" }),
	}

	var ids []int64
	err := db.WriteTx(ctx, func(tx memdb.DBTX) error {
		for _, bb := range seed {
			b, err := bb.BuildDomain()
			require.NoError(t, err)
			id, err := repo.Create(ctx, tx, b)
			if err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	err = db.ReadTx(ctx, func(tx memdb.DBTX) error {
		got, err := repo.FindByRoom(ctx, tx, 1)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, int64(1), got[0].ID())
		assert.Equal(t, int64(3), got[1].ID())
		assert.Equal(t, booking.StatusConfirmed, got[1].Status())
		assert.Equal(t, "13:00", got[1].TimeSlot().Start())

		none, err := repo.FindByRoom(ctx, tx, 5)
		require.NoError(t, err)
		assert.Empty(t, none)
		return nil
	})
	require.NoError(t, err)
}

func TestBookingRepository_Errors(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingRepository()

	t.Run("read-only transaction", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		err = memdb.New().ReadTx(ctx, func(tx memdb.DBTX) error {
			_, err := repo.Create(ctx, tx, b)
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("corrupt row", func(t *testing.T) {
		db := memdb.New()
		require.NoError(t, db.WriteTx(ctx, func(tx memdb.DBTX) error {
			_, err := tx.InsertBooking(memdb.BookingRow{RoomID: 1, CustomerName: "Bob", Date: "2024-04-10", StartTime: "10:00", EndTime: "11:00", Status: "Pending"})
			return err
		}))

		err := db.ReadTx(ctx, func(tx memdb.DBTX) error {
			_, err := repo.FindByRoom(ctx, tx, 1)
			return err
		})
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindStoreFailure))
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		db := memdb.New()
		// ReadTx itself would reject cctx, so the tx is opened with ctx.
		err := db.ReadTx(ctx, func(tx memdb.DBTX) error {
			_, err := repo.FindByRoom(cctx, tx, 1)
			return err
		})
		assert.True(t, infra.IsKind(err, infra.KindCanceled))
	})
}
