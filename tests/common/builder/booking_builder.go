//go:build unit || e2e

package builder

import (
	"time"

	dombooking "room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	ID           int64
	RoomID       int64
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		RoomID:       1,
		CustomerName: "Bob",
		Date:         "2024-04-10",
		StartTime:    "10:00",
		EndTime:      "12:00",
		CreatedAt:    time.Date(2024, 4, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildTimeSlot() dombooking.TimeSlot {
	slot, err := dombooking.NewTimeSlot(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		panic(err)
	}
	return slot
}

func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	slot, err := dombooking.NewTimeSlot(b.Date, b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.RoomID, b.CustomerName, slot, b.CreatedAt)
}

// BuildStored returns a booking as it looks after being persisted.
func (b *BookingBuilder) BuildStored() *dombooking.Booking {
	return dombooking.ReconstructBooking(b.ID, b.RoomID, b.CustomerName, b.BuildTimeSlot(), dombooking.StatusConfirmed, b.CreatedAt)
}

func (b *BookingBuilder) BuildRow() memdb.BookingRow {
	return memdb.BookingRow{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       dombooking.StatusConfirmed.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildView() queries.BookingView {
	return queries.BookingView{
		ID:           b.ID,
		RoomID:       b.RoomID,
		CustomerName: b.CustomerName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		Status:       dombooking.StatusConfirmed.String(),
		CreatedAt:    b.CreatedAt,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CustomerName: b.CustomerName,
		Date:         b.Date,
		StartTime:    b.StartTime,
		EndTime:      b.EndTime,
		RoomID:       ptr.Of(b.RoomID),
	}
}
