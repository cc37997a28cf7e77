package commands

import (
	"context"
	"strings"

	"fuelpos/internal/pkg/errs"
	"fuelpos/internal/usecase/shared"
)

var ErrInvalidSetting = errs.New("invalid setting")

// Provider credentials and simulation knobs live in the settings table so
// they can be changed without a redeploy.
type SettingCommands interface {
	List(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, key, value string) error
}

type settingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewSettingCommands(uow shared.UnitOfWork) SettingCommands {
	return &settingCommandsImpl{uow: uow}
}

func (s *settingCommandsImpl) List(ctx context.Context) (map[string]string, error) {
	var settings map[string]string
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		all, err := tx.Settings().All(ctx, tx.DB())
		if err != nil {
			return err
		}
		settings = all
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *settingCommandsImpl) Update(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidSetting
	}

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Set(ctx, tx.DB(), key, value)
	})
}
