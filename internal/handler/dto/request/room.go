package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"room-booking/internal/domain/room"
	"room-booking/internal/pkg/ptr"
)

var errInvalidAmenities = errors.New("amenities must be a string or a list of strings")

// Pointer fields distinguish "absent" from "zero" so that presence and
// range errors are reported separately.
type CreateRoomRequest struct {
	RoomName     string    `json:"roomName" binding:"required"`
	Seats        *int      `json:"seats" binding:"required"`
	Amenities    Amenities `json:"amenities" binding:"required,amenities"`
	PricePerHour *float64  `json:"pricePerHour" binding:"required"`
}

func (r CreateRoomRequest) ToDomain(now time.Time) (*room.Room, error) {
	return room.NewRoom(r.RoomName, ptr.Deref(r.Seats), r.Amenities, ptr.Deref(r.PricePerHour), now)
}

// Amenities accepts either a single string or a list of strings on the wire.
type Amenities []string

func (a *Amenities) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*a = Amenities{single}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return errInvalidAmenities
	}
	if list == nil {
		list = []string{}
	}
	*a = list
	return nil
}
