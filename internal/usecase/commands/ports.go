package commands

import (
	"context"

	"room-booking/internal/domain/booking"
	"room-booking/internal/domain/room"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/errs"
)

var (
	ErrValidation      = errs.New("validation failed")
	ErrRoomNotFound    = errs.New("room not found")
	ErrBookingConflict = errs.New("room is already booked at the requested time")
	ErrStoreFailure    = errs.New("store operation failed")
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/mock_ports.go -package=commandsmock

type RoomRepository interface {
	Create(ctx context.Context, tx memdb.DBTX, r *room.Room) (int64, error)
	FindByID(ctx context.Context, tx memdb.DBTX, id int64) (*room.Room, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx memdb.DBTX, b *booking.Booking) (int64, error)
	FindByRoom(ctx context.Context, tx memdb.DBTX, roomID int64) ([]*booking.Booking, error)
}

// TxManager runs fn with exclusive access to the store. Writes made through
// tx are kept only when fn returns nil.
type TxManager interface {
	WriteTx(ctx context.Context, fn func(tx memdb.DBTX) error) error
}
