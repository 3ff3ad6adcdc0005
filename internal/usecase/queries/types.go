package queries

import (
	"time"
)

// RoomView represents a stored room as the read side sees it
type RoomView struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Seats        int       `json:"seats"`
	Amenities    []string  `json:"amenities"`
	PricePerHour float64   `json:"price_per_hour"`
	CreatedAt    time.Time `json:"created_at"`
}

// BookingView represents a stored booking as the read side sees it
type BookingView struct {
	ID           int64     `json:"id"`
	RoomID       int64     `json:"room_id"`
	CustomerName string    `json:"customer_name"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// Snapshot is a consistent copy of both tables taken under one read lock.
// Rooms and Bookings are in creation order.
type Snapshot struct {
	Rooms    []RoomView
	Bookings []BookingView
}

func (s *Snapshot) RoomIndex() map[int64]*RoomView {
	idx := make(map[int64]*RoomView, len(s.Rooms))
	for i := range s.Rooms {
		idx[s.Rooms[i].ID] = &s.Rooms[i]
	}
	return idx
}

func (s *Snapshot) BookingsByRoom() map[int64][]BookingView {
	idx := make(map[int64][]BookingView, len(s.Rooms))
	for _, b := range s.Bookings {
		idx[b.RoomID] = append(idx[b.RoomID], b)
	}
	return idx
}

// BookingsByCustomer matches the name exactly, case included.
func (s *Snapshot) BookingsByCustomer(customerName string) []BookingView {
	var out []BookingView
	for _, b := range s.Bookings {
		if b.CustomerName == customerName {
			out = append(out, b)
		}
	}
	return out
}

type RoomReport struct {
	RoomName string
	Bookings []RoomBooking
}

type RoomBooking struct {
	CustomerName string
	Date         string
	StartTime    string
	EndTime      string
}

type CustomerBooking struct {
	CustomerName string
	RoomName     string
	Date         string
	StartTime    string
	EndTime      string
}

type CustomerSummary struct {
	CustomerName string
	BookingCount int
	Bookings     []CustomerBookingDetail
}

// CustomerBookingDetail.BookingDate is when the summary was generated; the
// time a booking was made is not part of the public contract.
type CustomerBookingDetail struct {
	RoomName      string
	Date          string
	StartTime     string
	EndTime       string
	BookingID     int64
	BookingStatus string
	BookingDate   time.Time
}
