package commands_test

import (
	"strings"
	"testing"

	"checkout/internal/core/application/usecases/commands"
	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	owner := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(owner, " addr-1 ", " key-1 ")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, owner, cmd.OwnerID())
	assert.Equal(t, "addr-1", cmd.AddressID())
	assert.Equal(t, "key-1", cmd.IdempotencyKey())
}

func TestNewCreateOrderCommand_OptionalFieldsMayBeEmpty(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", "")

	require.NoError(t, err)
	assert.Empty(t, cmd.AddressID())
	assert.Empty(t, cmd.IdempotencyKey())
}

func TestNewCreateOrderCommand_InvalidOwner(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.UUID{}, "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_KeyTooLong(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "", strings.Repeat("k", commands.MaxIdempotencyKeyLength+1))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommand_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
