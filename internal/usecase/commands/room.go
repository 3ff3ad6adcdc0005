package commands

import (
	"context"
	"log/slog"

	reqdto "room-booking/internal/handler/dto/request"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/errs"
)

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/mock_room.go -package=commandsmock

type CreateRoomResult struct {
	RoomID int64
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*CreateRoomResult, error)
}

type roomCommandsImpl struct {
	tx       TxManager
	roomRepo RoomRepository
	clock    clock.Clock
}

func NewRoomCommands(tx TxManager, roomRepo RoomRepository, clk clock.Clock) RoomCommands {
	return &roomCommandsImpl{
		tx:       tx,
		roomRepo: roomRepo,
		clock:    clk,
	}
}

func (c *roomCommandsImpl) CreateRoom(ctx context.Context, req reqdto.CreateRoomRequest) (*CreateRoomResult, error) {
	entity, err := req.ToDomain(c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	var roomID int64
	err = c.tx.WriteTx(ctx, func(tx memdb.DBTX) error {
		id, createErr := c.roomRepo.Create(ctx, tx, entity)
		if createErr != nil {
			return createErr
		}
		roomID = id
		return nil
	})
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	slog.Info("room created", "room_id", roomID, "room_name", entity.Name(), "seats", entity.Seats())
	return &CreateRoomResult{RoomID: roomID}, nil
}
