package converter

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/errs"
)

func BookingToRow(b *booking.Booking) memdb.BookingRow {
	slot := b.TimeSlot()
	return memdb.BookingRow{
		RoomID:       b.RoomID(),
		CustomerName: b.CustomerName(),
		Date:         slot.Date(),
		StartTime:    slot.Start(),
		EndTime:      slot.End(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt(),
	}
}

// RowToBooking fails only on rows that could not have been written through
// BookingToRow.
func RowToBooking(row memdb.BookingRow) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(row.Date, row.StartTime, row.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %d", row.ID)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booking %d: invalid status %q", row.ID, row.Status)
	}
	return booking.ReconstructBooking(row.ID, row.RoomID, row.CustomerName, slot, status, row.CreatedAt), nil
}
