package guard_test

import (
	"errors"
	"testing"

	"checkout/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("command not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errCommandNotConstructed := errors.New("ShipOrderCommand must be created via NewShipOrderCommand")

	type shipOrderCommand struct {
		carrier string
		guard   guard.ConstructorGuard
	}

	newShipOrderCommand := func(carrier string) shipOrderCommand {
		return shipOrderCommand{carrier: carrier, guard: guard.NewConstructorGuard()}
	}

	t.Run("constructed_command_is_valid", func(t *testing.T) {
		cmd := newShipOrderCommand("yurtici")

		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, "yurtici", cmd.carrier)
	})

	t.Run("literal_command_is_rejected", func(t *testing.T) {
		cmd := shipOrderCommand{carrier: "yurtici"}

		assert.Equal(t, errCommandNotConstructed, cmd.guard.Validate(errCommandNotConstructed))
	})
}
