package request

import (
	"time"

	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/ptr"
)

type CreateBookingRequest struct {
	CustomerName string `json:"customerName" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	RoomID       *int64 `json:"roomId" binding:"required"`
}

func (r CreateBookingRequest) ToDomain(now time.Time) (*booking.Booking, error) {
	slot, err := booking.NewTimeSlot(r.Date, r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(ptr.Deref(r.RoomID), r.CustomerName, slot, now)
}
