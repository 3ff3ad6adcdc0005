package response

import (
	"room-booking/internal/usecase/queries"
)

type CreateRoomResponse struct {
	Message string `json:"message"`
	RoomID  int64  `json:"roomId"`
}

type RoomReportResponse struct {
	RoomName string                `json:"roomName"`
	Bookings []RoomBookingResponse `json:"bookings"`
}

type RoomBookingResponse struct {
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

func FromRoomReports(reports []*queries.RoomReport) []RoomReportResponse {
	out := make([]RoomReportResponse, 0, len(reports))
	for _, r := range reports {
		bookings := make([]RoomBookingResponse, 0, len(r.Bookings))
		for _, b := range r.Bookings {
			bookings = append(bookings, RoomBookingResponse{
				CustomerName: b.CustomerName,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
			})
		}
		out = append(out, RoomReportResponse{RoomName: r.RoomName, Bookings: bookings})
	}
	return out
}
