package bootstrap

import (
	"context"
	"log/slog"

	"room-booking/internal/infra/memdb"
	"room-booking/internal/usecase/commands"

	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
		func(db *memdb.DB) commands.TxManager {
			return db
		},
	),
)

// NewDB creates the process-wide store. Its contents are discarded on
// shutdown.
func NewDB(lc fx.Lifecycle, logger *slog.Logger) *memdb.DB {
	db := memdb.New()

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			rooms, bookings := db.Counts()
			logger.Info("discarding in-memory store", "rooms", rooms, "bookings", bookings)
			return nil
		},
	})

	return db
}
