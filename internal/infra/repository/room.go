package repository

import (
	"context"
	"strconv"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra"
	"room-booking/internal/infra/memdb"
	"room-booking/internal/infra/repository/converter"
	"room-booking/internal/pkg/errs"
)

type RoomRepository struct{}

func NewRoomRepository() *RoomRepository {
	return &RoomRepository{}
}

func (r *RoomRepository) Create(ctx context.Context, tx memdb.DBTX, rm *room.Room) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	row, err := tx.InsertRoom(converter.RoomToRow(rm))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create room", err)
	}
	return row.ID, nil
}

func (r *RoomRepository) FindByID(ctx context.Context, tx memdb.DBTX, id int64) (*room.Room, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	row, ok := tx.RoomByID(id)
	if !ok {
		return nil, infra.WrapRepoErr("room not found", errs.New("no room with id "+strconv.FormatInt(id, 10)), infra.KindNotFound)
	}
	return converter.RowToRoom(row), nil
}
