package components

import (
	"fuelpos/internal/infra/db"
	"fuelpos/internal/infra/readstore"
	"fuelpos/internal/infra/uow"
	"fuelpos/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores
		fx.Annotate(
			readstore.NewPumpReadStore,
			fx.As(new(queries.PumpReadStore)),
		),
		fx.Annotate(
			readstore.NewShiftTemplateReadStore,
			fx.As(new(queries.ShiftTemplateReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
