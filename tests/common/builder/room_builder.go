//go:build unit || e2e

package builder

import (
	"time"

	domroom "room-booking/internal/domain/room"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/ptr"
	"room-booking/internal/usecase/queries"
)

type RoomBuilder struct {
	ID           int64
	Name         string
	Seats        int
	Amenities    []string
	PricePerHour float64
	CreatedAt    time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:           1,
		Name:         "Conference Room Alpha",
		Seats:        10,
		Amenities:    []string{"Projector", "Whiteboard"},
		PricePerHour: 50,
		CreatedAt:    time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(r.Name, r.Seats, r.Amenities, r.PricePerHour, r.CreatedAt)
}

func (r *RoomBuilder) BuildRow() memdb.RoomRow {
	return memdb.RoomRow{
		ID:           r.ID,
		Name:         r.Name,
		Seats:        r.Seats,
		Amenities:    append([]string(nil), r.Amenities...),
		PricePerHour: r.PricePerHour,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *RoomBuilder) BuildView() queries.RoomView {
	return queries.RoomView{
		ID:           r.ID,
		Name:         r.Name,
		Seats:        r.Seats,
		Amenities:    append([]string(nil), r.Amenities...),
		PricePerHour: r.PricePerHour,
		CreatedAt:    r.CreatedAt,
	}
}

func (r *RoomBuilder) BuildCreateRequestDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{
		RoomName:     r.Name,
		Seats:        ptr.Of(r.Seats),
		Amenities:    append(reqdto.Amenities(nil), r.Amenities...),
		PricePerHour: ptr.Of(r.PricePerHour),
	}
}
