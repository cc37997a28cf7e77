// Package migrate runs schema migrations and the idempotent bootstrap seed
// at process start.
package migrate

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"fuelpos/internal/domain/user"
	"fuelpos/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Run applies pending migrations and seeds the bootstrap accounts. Safe to
// call on every start; all steps are insert-if-absent.
func Run(ctx context.Context, pool *pgxpool.Pool) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return seedBootstrapUsers(ctx, pool)
}

type bootstrapUser struct {
	fullName string
	username string
	password string // known bootstrap credential; rotate outside local use
	mobileNo string
	role     user.Role
}

// Bootstrap accounts mirror the documented defaults so a fresh install is
// usable immediately. Password hashing happens here because bcrypt is not
// expressible in SQL migrations.
var bootstrapUsers = []bootstrapUser{
	{
		fullName: "System Administrator",
		username: "admin",
		password: "admin123",
		mobileNo: "0700123456",
		role:     user.RoleAdmin,
	},
	{
		fullName: "John Doe",
		username: "attendant1",
		password: "pass123",
		mobileNo: "0711223344",
		role:     user.RoleAttendant,
	},
}

func seedBootstrapUsers(ctx context.Context, pool *pgxpool.Pool) error {
	for _, u := range bootstrapUsers {
		hash, err := password.HashPassword(u.password)
		if err != nil {
			return fmt.Errorf("hash bootstrap password for %s: %w", u.username, err)
		}

		tag, err := pool.Exec(ctx,
			`INSERT INTO users (id, full_name, username, password_hash, mobile_no, role)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 ON CONFLICT (username) DO NOTHING`,
			uuid.New(), u.fullName, u.username, hash, u.mobileNo, u.role.String(),
		)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.username, err)
		}
		if tag.RowsAffected() == 1 {
			slog.Info("seeded bootstrap user", "username", u.username, "role", u.role.String())
		}
	}
	return nil
}
