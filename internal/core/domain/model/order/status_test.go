package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Processing))
		assert.Equal(t, 3, int(order.Shipped))
		assert.Equal(t, 4, int(order.Delivered))
		assert.Equal(t, 5, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(6),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return enum names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Processing", order.Processing.String())
		assert.Equal(t, "Shipped", order.Shipped.String())
		assert.Equal(t, "Delivered", order.Delivered.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip all valid statuses", func(t *testing.T) {
		statuses := []order.Status{
			order.Pending,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range statuses {
			parsed, err := order.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Refunded"} {
			_, err := order.StatusFromString(name)

			require.Error(t, err, "name %q should be rejected", name)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("Delivered and Cancelled are terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("other statuses are not terminal", func(t *testing.T) {
		assert.False(t, order.Pending.IsTerminal())
		assert.False(t, order.Processing.IsTerminal())
		assert.False(t, order.Shipped.IsTerminal())
	})
}

func TestStatus_StartProcessing(t *testing.T) {
	t.Run("should transition from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.StartProcessing()

		require.NoError(t, err)
		assert.Equal(t, order.Processing, newStatus)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.StartProcessing()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidState)
				assert.Contains(t, err.Error(), status.String())
				assert.Contains(t, err.Error(), "Processing")
			})
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should transition from Pending", func(t *testing.T) {
		newStatus, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, newStatus)
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		} {
			t.Run(fmt.Sprintf("from %s", status.String()), func(t *testing.T) {
				_, err := status.Cancel()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrInvalidState)

				var stateErr *errs.InvalidStateError
				require.ErrorAs(t, err, &stateErr)
				assert.Equal(t, status.String(), stateErr.CurrentState)
				assert.Equal(t, "Cancelled", stateErr.RequestedState)
			})
		}
	})
}
