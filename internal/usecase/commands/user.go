package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "fuelpos/internal/handler/dto/request"
	"fuelpos/internal/infra"
	"fuelpos/internal/pkg/errs"
	"fuelpos/internal/usecase/shared"
)

var (
	ErrDuplicateUser = errs.New("username or mobile number already taken")
	ErrUserNotFound  = errs.New("user not found")
	ErrInvalidUser   = errs.New("invalid user")
)

type UserCommands interface {
	Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

type userCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewUserCommands(uow shared.UnitOfWork) UserCommands {
	return &userCommandsImpl{uow: uow}
}

func (u *userCommandsImpl) Create(ctx context.Context, req reqdto.CreateUserRequest) (uuid.UUID, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}

	var id uuid.UUID
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Users().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrDuplicateUser
			}
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (u *userCommandsImpl) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetActive(ctx, tx.DB(), id, active); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		return nil
	})
}
