package readstore

import (
	"context"

	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"
	"fuelpos/internal/pkg/pgconv"
	"fuelpos/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, username, role, is_active FROM users WHERE id = $1`,
		id,
	)

	var v queries.AuthorizedUserView
	if err := row.Scan(&v.ID, &v.FullName, &v.Username, &v.Role, &v.IsActive); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

// FindByUsername also returns the stored password hash for credential
// verification; the hash never leaves the auth command.
func (r *UserReadStore) FindByUsername(ctx context.Context, username string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, username, role, is_active, password_hash FROM users WHERE username = $1`,
		username,
	)

	var (
		v    queries.AuthorizedUserView
		hash string
	)
	if err := row.Scan(&v.ID, &v.FullName, &v.Username, &v.Role, &v.IsActive, &hash); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by username", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) List(ctx context.Context) ([]*queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, full_name, username, mobile_no, role, is_active
		 FROM users
		 ORDER BY username`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*queries.UserView
	for rows.Next() {
		var v queries.UserView
		if err := rows.Scan(&v.ID, &v.FullName, &v.Username, &v.MobileNo, &v.Role, &v.IsActive); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		users = append(users, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return users, nil
}

// ListWithSales returns attendants that have at least one sale, for the
// report filter picker.
func (r *UserReadStore) ListWithSales(ctx context.Context) ([]queries.FilterOption, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT u.id, u.full_name
		 FROM users u
		 JOIN sales_records s ON s.attendant_id = u.id
		 ORDER BY u.full_name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list attendants with sales", err)
	}
	defer rows.Close()

	var opts []queries.FilterOption
	for rows.Next() {
		var o queries.FilterOption
		if err := rows.Scan(&o.ID, &o.Name); err != nil {
			return nil, infra.WrapRepoErr("failed to scan attendant option", err)
		}
		opts = append(opts, o)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate attendant options", err)
	}
	return opts, nil
}
