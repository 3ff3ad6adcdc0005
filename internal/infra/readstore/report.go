package readstore

import (
	"context"

	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReportReadStore struct {
	db *memdb.DB
}

func NewReportReadStore(db *memdb.DB) *ReportReadStore {
	return &ReportReadStore{db: db}
}

// Snapshot copies both tables under a single read transaction so that every
// booking in the result refers to a room that is also in the result. The rows
// handed out by the transaction are already private copies.
func (s *ReportReadStore) Snapshot(ctx context.Context) (*queries.Snapshot, error) {
	snap := &queries.Snapshot{}
	err := s.db.ReadTx(ctx, func(tx memdb.DBTX) error {
		rooms := tx.Rooms()
		bookings := tx.Bookings()

		snap.Rooms = make([]queries.RoomView, 0, len(rooms))
		snap.Bookings = make([]queries.BookingView, 0, len(bookings))
		if err := copier.Copy(&snap.Rooms, &rooms); err != nil {
			return err
		}
		return copier.Copy(&snap.Bookings, &bookings)
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to read store snapshot", err)
	}
	return snap, nil
}
