package commands_test

import (
	"testing"

	"artmarket/internal/core/application/usecases/commands"
	"artmarket/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMarkDeliveredCommand(t *testing.T) {
	partner := services.Actor{ID: 31, Role: services.RolePartner}
	ref := catalogRef(t, 101)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewMarkDeliveredCommand(partner, ref)
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
	})

	t.Run("invalid actor id", func(t *testing.T) {
		_, err := commands.NewMarkDeliveredCommand(services.Actor{ID: -1, Role: services.RolePartner}, ref)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.MarkDeliveredCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrMarkDeliveredCommandIsNotConstructed)
	})
}
