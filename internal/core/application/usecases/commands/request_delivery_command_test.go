package commands_test

import (
	"testing"

	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/domain/model/kernel"
	"artmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestDeliveryCommand(t *testing.T) {
	actor := services.Actor{ID: 7, Role: services.RoleArtist}
	ref := catalogRef(t, 101)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewRequestDeliveryCommand(actor, ref)
		require.NoError(t, err)
		assert.Equal(t, actor, cmd.Actor())
		assert.True(t, ref.IsEqual(cmd.OrderRef()))
		assert.NoError(t, cmd.Validate())
	})

	t.Run("invalid actor id", func(t *testing.T) {
		_, err := commands.NewRequestDeliveryCommand(services.Actor{ID: 0, Role: services.RoleArtist}, ref)
		require.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := commands.NewRequestDeliveryCommand(services.Actor{ID: 7, Role: services.UnknownRole}, ref)
		require.Error(t, err)
	})

	t.Run("invalid order ref", func(t *testing.T) {
		_, err := commands.NewRequestDeliveryCommand(actor, kernel.OrderRef{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.RequestDeliveryCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrRequestDeliveryCommandIsNotConstructed)
	})
}
