package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Shipped)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
		assert.Equal(t, order.Shipped, cmd.NewStatus())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := commands.NewUpdateOrderStatusCommand(invalidID, order.Shipped)

		require.Error(t, err)
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status")
	})

	t.Run("unconstructed command fails validation", func(t *testing.T) {
		var cmd commands.UpdateOrderStatusCommand

		require.Error(t, cmd.Validate())
	})
}
