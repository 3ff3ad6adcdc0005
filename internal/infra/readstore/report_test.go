//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/infra/readstore"
	"room-booking/internal/usecase/queries"
	"room-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, db *memdb.DB, rooms []memdb.RoomRow, bookings []memdb.BookingRow) {
	t.Helper()
	require.NoError(t, db.WriteTx(context.Background(), func(tx memdb.DBTX) error {
		for _, r := range rooms {
			if _, err := tx.InsertRoom(r); err != nil {
				return err
			}
		}
		for _, b := range bookings {
			if _, err := tx.InsertBooking(b); err != nil {
				return err
			}
		}
		return nil
	}))
}

func TestReportReadStore_Snapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		snap, err := readstore.NewReportReadStore(memdb.New()).Snapshot(ctx)
		require.NoError(t, err)
		assert.Empty(t, snap.Rooms)
		assert.Empty(t, snap.Bookings)
	})

	t.Run("copies rows into views in insertion order", func(t *testing.T) {
		db := memdb.New()
		rb := builder.NewRoomBuilder()
		bb := builder.NewBookingBuilder()
		seed(t, db, []memdb.RoomRow{rb.BuildRow()}, []memdb.BookingRow{bb.BuildRow()})

		snap, err := readstore.NewReportReadStore(db).Snapshot(ctx)
		require.NoError(t, err)

		want := &queries.Snapshot{
			Rooms:    []queries.RoomView{rb.BuildView()},
			Bookings: []queries.BookingView{bb.BuildView()},
		}
		if diff := cmp.Diff(want, snap); diff != "" {
			t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("snapshots do not share amenities", func(t *testing.T) {
		db := memdb.New()
		seed(t, db, []memdb.RoomRow{builder.NewRoomBuilder().BuildRow()}, nil)
		store := readstore.NewReportReadStore(db)

		snap, err := store.Snapshot(ctx)
		require.NoError(t, err)
		snap.Rooms[0].Amenities[0] = "mutated"

		again, err := store.Snapshot(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Projector", again.Rooms[0].Amenities[0])
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := readstore.NewReportReadStore(memdb.New()).Snapshot(cctx)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindCanceled))
	})
}
