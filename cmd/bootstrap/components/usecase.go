package components

import (
	"room-booking/internal/domain/booking"
	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAvailability,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomCommands,
		commands.NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReportQueries,
	),
)

func NewAvailability(cfg config.Config) (*booking.Availability, error) {
	policy, err := booking.ParseOverlapPolicy(cfg.Booking.OverlapPolicy)
	if err != nil {
		return nil, err
	}
	return booking.NewAvailability(policy), nil
}
