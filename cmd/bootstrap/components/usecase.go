package components

import (
	"fuelpos/internal/domain/payment"
	"fuelpos/internal/pkg/clock"
	"fuelpos/internal/pkg/config"
	"fuelpos/internal/usecase/commands"
	"fuelpos/internal/usecase/queries"
	"fuelpos/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		payment.NewUniformOutcomePicker,
		fx.As(new(payment.OutcomePicker)),
	),
	fx.Annotate(
		payment.NewMpesaReceiptGenerator,
		fx.As(new(payment.ReceiptGenerator)),
	),
	func(picker payment.OutcomePicker, receipts payment.ReceiptGenerator) payment.Services {
		return payment.Services{
			Outcomes: picker,
			Receipts: receipts,
		}
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewShiftCommands,
		commands.NewSaleCommands,
		commands.NewUserCommands,
		commands.NewSettingCommands,
		NewPaymentCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewPumpQueries,
		queries.NewShiftTemplateQueries,
		queries.NewSaleQueries,
	),
)

func NewPaymentCommands(uow shared.UnitOfWork, services payment.Services, cfg config.Config, clock clock.Clock) commands.PaymentCommands {
	return commands.NewPaymentCommands(uow, services, cfg.Payment.SimulationDelay, clock)
}
