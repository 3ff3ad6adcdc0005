package converter

import (
	"room-booking/internal/domain/room"
	"room-booking/internal/infra/memdb"
)

func RoomToRow(r *room.Room) memdb.RoomRow {
	return memdb.RoomRow{
		Name:         r.Name(),
		Seats:        r.Seats(),
		Amenities:    r.Amenities().Values(),
		PricePerHour: r.PricePerHour(),
		CreatedAt:    r.CreatedAt(),
	}
}

func RowToRoom(row memdb.RoomRow) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		row.Name,
		row.Seats,
		row.Amenities,
		row.PricePerHour,
		row.CreatedAt,
	)
}
