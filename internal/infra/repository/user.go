package repository

import (
	"context"

	"fuelpos/internal/domain/user"
	"fuelpos/internal/infra"
	"fuelpos/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	_, err := dbtx.Exec(ctx,
		`INSERT INTO users (id, full_name, username, password_hash, mobile_no, role, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.FullName(), u.Username().Value(), u.PasswordHash(),
		u.MobileNo().Value(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return u.ID(), nil
}

// SetActive flips the soft-deactivation flag. Users are never hard deleted.
func (r *UserRepository) SetActive(ctx context.Context, dbtx db.DBTX, id uuid.UUID, active bool) error {
	tag, err := dbtx.Exec(ctx,
		`UPDATE users SET is_active = $2 WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user active flag", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
