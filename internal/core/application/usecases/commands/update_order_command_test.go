package commands_test

import (
	"testing"

	"ordersheet/internal/core/application/usecases/commands"
	"ordersheet/internal/core/domain/model/order"
	"ordersheet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand("105", "106", order.Details{Phone: "66 812 345 678"}, items("a"))

	require.NoError(t, err)
	assert.Equal(t, "105", cmd.OldOrderNo())
	assert.Equal(t, "106", cmd.Order().Number())
	assert.Equal(t, "'0812345678", cmd.Order().Details().Phone)
}

func TestNewUpdateOrderCommand_JoinsErrors(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand("", "106", order.Details{}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.ErrorIs(t, err, order.ErrItemsAreRequired)
	assert.Contains(t, err.Error(), "oldOrderNo")
}

func TestUpdateOrderCommand_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.UpdateOrderCommand{}.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
}
