package commands

import (
	"context"
	"log/slog"

	"room-booking/internal/domain/booking"
	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/mock_booking.go -package=commandsmock

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	tx           TxManager
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	availability *booking.Availability
	clock        clock.Clock
}

func NewBookingCommands(
	tx TxManager,
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	availability *booking.Availability,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		tx:           tx,
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		availability: availability,
		clock:        clk,
	}
}

// CreateBooking resolves the room, checks availability and inserts the
// booking under one write transaction, so two concurrent requests for the
// same slot cannot both pass the availability check.
func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*CreateBookingResult, error) {
	entity, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var bookingID int64
	err = c.tx.WriteTx(ctx, func(tx memdb.DBTX) error {
		if _, findErr := c.roomRepo.FindByID(ctx, tx, entity.RoomID()); findErr != nil {
			if infra.IsKind(findErr, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(findErr, ErrStoreFailure)
		}

		existing, findErr := c.bookingRepo.FindByRoom(ctx, tx, entity.RoomID())
		if findErr != nil {
			return errs.Mark(findErr, ErrStoreFailure)
		}
		if blocking := c.availability.FirstConflict(existing, entity.RoomID(), entity.TimeSlot()); blocking != nil {
			slog.Info("booking rejected: slot unavailable",
				"room_id", entity.RoomID(),
				"requested", entity.TimeSlot().String(),
				"conflicting_booking_id", blocking.ID(),
				"policy", c.availability.Policy().String(),
			)
			return ErrBookingConflict
		}

		id, createErr := c.bookingRepo.Create(ctx, tx, entity)
		if createErr != nil {
			return errs.Mark(createErr, ErrStoreFailure)
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("room booked", "booking_id", bookingID, "room_id", entity.RoomID())
	return &CreateBookingResult{BookingID: bookingID}, nil
}
