package room

import (
	"errors"
	"time"
)

var (
	ErrEmptyRoomName     = errors.New("room name cannot be empty")
	ErrNonPositiveSeats  = errors.New("seats must be a positive integer")
	ErrNonPositivePrice  = errors.New("price per hour must be a positive number")
	ErrNoAmenities       = errors.New("at least one amenity is required")
	ErrNonPositiveRoomID = errors.New("room id must be a positive integer")
)

type Room struct {
	id           int64
	name         string
	seats        int
	amenities    Amenities
	pricePerHour float64
	createdAt    time.Time
}

// NewRoom validates a room that has not been stored yet; its id stays zero
// until the registry assigns one. The name is stored as sent.
func NewRoom(name string, seats int, amenities []string, pricePerHour float64, now time.Time) (*Room, error) {
	if name == "" {
		return nil, ErrEmptyRoomName
	}
	if seats <= 0 {
		return nil, ErrNonPositiveSeats
	}
	if !(pricePerHour > 0) {
		return nil, ErrNonPositivePrice
	}
	am, err := NewAmenities(amenities)
	if err != nil {
		return nil, err
	}

	return &Room{
		name:         name,
		seats:        seats,
		amenities:    am,
		pricePerHour: pricePerHour,
		createdAt:    now,
	}, nil
}

func ReconstructRoom(
	id int64,
	name string,
	seats int,
	amenities []string,
	pricePerHour float64,
	createdAt time.Time,
) *Room {
	return &Room{
		id:           id,
		name:         name,
		seats:        seats,
		amenities:    Amenities(amenities),
		pricePerHour: pricePerHour,
		createdAt:    createdAt,
	}
}

// WithID returns a copy carrying the id assigned on insert.
func (r *Room) WithID(id int64) (*Room, error) {
	if id <= 0 {
		return nil, ErrNonPositiveRoomID
	}
	cp := *r
	cp.id = id
	return &cp, nil
}

func (r *Room) ID() int64             { return r.id }
func (r *Room) Name() string          { return r.name }
func (r *Room) Seats() int            { return r.seats }
func (r *Room) Amenities() Amenities  { return r.amenities }
func (r *Room) PricePerHour() float64 { return r.pricePerHour }
func (r *Room) CreatedAt() time.Time  { return r.createdAt }
