package response

import (
	"time"

	"room-booking/internal/usecase/queries"
)

const bookingDateLayout = "2006-01-02T15:04:05.000Z07:00"

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

type CustomerBookingResponse struct {
	CustomerName string `json:"customerName"`
	RoomName     string `json:"roomName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

type CustomerSummaryResponse struct {
	CustomerName string                          `json:"customerName"`
	BookingCount int                             `json:"bookingCount"`
	Bookings     []CustomerBookingDetailResponse `json:"bookings"`
}

type CustomerBookingDetailResponse struct {
	RoomName      string `json:"roomName"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	BookingID     int64  `json:"bookingId"`
	BookingStatus string `json:"bookingStatus"`
	BookingDate   string `json:"bookingDate"`
}

func FromCustomerBookings(items []*queries.CustomerBooking) []CustomerBookingResponse {
	out := make([]CustomerBookingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CustomerBookingResponse{
			CustomerName: it.CustomerName,
			RoomName:     it.RoomName,
			Date:         it.Date,
			StartTime:    it.StartTime,
			EndTime:      it.EndTime,
		})
	}
	return out
}

func FromCustomerSummary(s *queries.CustomerSummary) *CustomerSummaryResponse {
	details := make([]CustomerBookingDetailResponse, 0, len(s.Bookings))
	for _, d := range s.Bookings {
		details = append(details, CustomerBookingDetailResponse{
			RoomName:      d.RoomName,
			Date:          d.Date,
			StartTime:     d.StartTime,
			EndTime:       d.EndTime,
			BookingID:     d.BookingID,
			BookingStatus: d.BookingStatus,
			BookingDate:   FormatBookingDate(d.BookingDate),
		})
	}
	return &CustomerSummaryResponse{
		CustomerName: s.CustomerName,
		BookingCount: s.BookingCount,
		Bookings:     details,
	}
}

// FormatBookingDate renders t in UTC with millisecond precision, e.g.
// 2024-01-01T09:00:00.000Z.
func FormatBookingDate(t time.Time) string {
	return t.UTC().Format(bookingDateLayout)
}
