//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fuelpos/internal/usecase/commands"
)

func TestListSettings(t *testing.T) {
	f := newTxFixture()
	f.settings.On("All", mock.Anything, mock.Anything).Return(map[string]string{
		"mpesa_shortcode":        "174379",
		"mpesa_simulation_delay": "5s",
	}, nil)

	svc := commands.NewSettingCommands(f.uow())
	settings, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "5s", settings["mpesa_simulation_delay"])
	assert.Len(t, settings, 2)
}

func TestUpdateSetting(t *testing.T) {
	t.Run("writes the value", func(t *testing.T) {
		f := newTxFixture()
		f.settings.On("Set", mock.Anything, mock.Anything, "mpesa_simulation_delay", "2s").Return(nil)

		svc := commands.NewSettingCommands(f.uow())
		err := svc.Update(context.Background(), "mpesa_simulation_delay", "2s")

		require.NoError(t, err)
		f.assertExpectations(t)
	})

	t.Run("trims the key", func(t *testing.T) {
		f := newTxFixture()
		f.settings.On("Set", mock.Anything, mock.Anything, "mpesa_shortcode", "12345").Return(nil)

		svc := commands.NewSettingCommands(f.uow())
		err := svc.Update(context.Background(), "  mpesa_shortcode  ", "12345")

		require.NoError(t, err)
	})

	t.Run("rejects a blank key", func(t *testing.T) {
		f := newTxFixture()
		svc := commands.NewSettingCommands(f.uow())

		err := svc.Update(context.Background(), "   ", "value")

		assert.ErrorIs(t, err, commands.ErrInvalidSetting)
		f.settings.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
