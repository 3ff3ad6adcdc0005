package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCustomerName    = errors.New("customer name cannot be empty")
	ErrInvalidRoomID        = errors.New("room id must be a positive integer")
	ErrNonPositiveBookingID = errors.New("booking id must be a positive integer")
)

type Booking struct {
	id           int64
	roomID       int64
	customerName string
	timeSlot     TimeSlot
	status       Status
	createdAt    time.Time
}

// NewBooking validates a booking that has not been stored yet. The customer
// name is kept verbatim because lookups match it exactly.
func NewBooking(roomID int64, customerName string, slot TimeSlot, now time.Time) (*Booking, error) {
	if roomID <= 0 {
		return nil, ErrInvalidRoomID
	}
	if strings.TrimSpace(customerName) == "" {
		return nil, ErrEmptyCustomerName
	}

	return &Booking{
		roomID:       roomID,
		customerName: customerName,
		timeSlot:     slot,
		status:       StatusConfirmed,
		createdAt:    now,
	}, nil
}

func ReconstructBooking(
	id, roomID int64,
	customerName string,
	timeSlot TimeSlot,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:           id,
		roomID:       roomID,
		customerName: customerName,
		timeSlot:     timeSlot,
		status:       status,
		createdAt:    createdAt,
	}
}

func (b *Booking) WithID(id int64) (*Booking, error) {
	if id <= 0 {
		return nil, ErrNonPositiveBookingID
	}
	cp := *b
	cp.id = id
	return &cp, nil
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) RoomID() int64        { return b.roomID }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
