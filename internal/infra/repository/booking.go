package repository

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/infra/repository/converter"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, tx memdb.DBTX, b *booking.Booking) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	row, err := tx.InsertBooking(converter.BookingToRow(b))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return row.ID, nil
}

// FindByRoom returns the bookings of a room in insertion order.
func (r *BookingRepository) FindByRoom(ctx context.Context, tx memdb.DBTX, roomID int64) ([]*booking.Booking, error) {
	return r.filter(ctx, tx, "failed to find bookings by room", func(row memdb.BookingRow) bool {
		return row.RoomID == roomID
	})
}

func (r *BookingRepository) filter(ctx context.Context, tx memdb.DBTX, msg string, keep func(memdb.BookingRow) bool) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	var out []*booking.Booking
	for _, row := range tx.Bookings() {
		if !keep(row) {
			continue
		}
		b, err := converter.RowToBooking(row)
		if err != nil {
			return nil, infra.WrapRepoErr(msg, err)
		}
		out = append(out, b)
	}
	return out, nil
}
