package queries

import (
	"context"
	"log/slog"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
)

//go:generate mockgen -source=report.go -destination=../../../tests/mock/queries/mock_report.go -package=queriesmock

var (
	ErrCustomerBookingsNotFound = errs.New("no bookings found for customer")
	ErrReportInconsistent       = errs.New("booking references an unknown room")
	ErrQueryFailed              = errs.New("query failed")
)

type ReportReadStore interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type ReportQueries interface {
	Rooms(ctx context.Context) ([]*RoomReport, error)
	Customers(ctx context.Context) ([]*CustomerBooking, error)
	CustomerSummary(ctx context.Context, customerName string) (*CustomerSummary, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
	clock clock.Clock
}

func NewReportQueries(store ReportReadStore, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{store: store, clock: clk}
}

func (q *reportQueriesImpl) Rooms(ctx context.Context) ([]*RoomReport, error) {
	snap, err := q.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	byRoom := snap.BookingsByRoom()
	out := make([]*RoomReport, 0, len(snap.Rooms))
	for _, rm := range snap.Rooms {
		bookings := make([]RoomBooking, 0, len(byRoom[rm.ID]))
		for _, b := range byRoom[rm.ID] {
			bookings = append(bookings, RoomBooking{
				CustomerName: b.CustomerName,
				Date:         b.Date,
				StartTime:    b.StartTime,
				EndTime:      b.EndTime,
			})
		}
		out = append(out, &RoomReport{RoomName: rm.Name, Bookings: bookings})
	}
	return out, nil
}

// Customers fails as a whole when any booking points at a room that is not
// in the snapshot.
func (q *reportQueriesImpl) Customers(ctx context.Context) ([]*CustomerBooking, error) {
	snap, err := q.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	rooms := snap.RoomIndex()
	out := make([]*CustomerBooking, 0, len(snap.Bookings))
	for _, b := range snap.Bookings {
		rm, err := resolveRoom(rooms, b)
		if err != nil {
			return nil, err
		}
		out = append(out, &CustomerBooking{
			CustomerName: b.CustomerName,
			RoomName:     rm.Name,
			Date:         b.Date,
			StartTime:    b.StartTime,
			EndTime:      b.EndTime,
		})
	}
	return out, nil
}

func (q *reportQueriesImpl) CustomerSummary(ctx context.Context, customerName string) (*CustomerSummary, error) {
	snap, err := q.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	matches := snap.BookingsByCustomer(customerName)
	slog.Debug("customer bookings lookup", "customer_name", customerName, "matches", len(matches))
	if len(matches) == 0 {
		return nil, ErrCustomerBookingsNotFound
	}

	rooms := snap.RoomIndex()
	generatedAt := q.clock.Now()
	details := make([]CustomerBookingDetail, 0, len(matches))
	for _, b := range matches {
		rm, err := resolveRoom(rooms, b)
		if err != nil {
			return nil, err
		}
		details = append(details, CustomerBookingDetail{
			RoomName:      rm.Name,
			Date:          b.Date,
			StartTime:     b.StartTime,
			EndTime:       b.EndTime,
			BookingID:     b.ID,
			BookingStatus: b.Status,
			BookingDate:   generatedAt,
		})
	}

	return &CustomerSummary{
		CustomerName: customerName,
		BookingCount: len(details),
		Bookings:     details,
	}, nil
}

func (q *reportQueriesImpl) snapshot(ctx context.Context) (*Snapshot, error) {
	snap, err := q.store.Snapshot(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return snap, nil
}

func resolveRoom(rooms map[int64]*RoomView, b BookingView) (*RoomView, error) {
	rm, ok := rooms[b.RoomID]
	if !ok {
		slog.Error("booking references an unknown room",
			"booking_id", b.ID,
			"room_id", b.RoomID,
		)
		return nil, errs.Mark(errs.Newf("booking %d references unknown room %d", b.ID, b.RoomID), ErrReportInconsistent)
	}
	return rm, nil
}
