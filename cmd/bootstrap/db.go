package bootstrap

import (
	"context"

	"fuelpos/internal/infra/db"
	"fuelpos/internal/infra/migrate"
	"fuelpos/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// MigrateModule applies pending migrations and seeds before the server
// accepts traffic.
var MigrateModule = fx.Module("migrate",
	fx.Invoke(RunMigrations),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func RunMigrations(pool *pgxpool.Pool) error {
	return migrate.Run(context.Background(), pool)
}
