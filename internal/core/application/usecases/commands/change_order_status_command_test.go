package commands_test

import (
	"testing"

	"market/internal/core/application/usecases/commands"
	"market/internal/core/domain/model/kernel"
	"market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand(t *testing.T) {
	t.Run("keeps the requested name", func(t *testing.T) {
		id := kernel.NewUUID()

		cmd, err := commands.NewChangeOrderStatusCommand(id, " in_progress ")

		require.NoError(t, err)
		assert.Equal(t, id, cmd.OrderID())
		assert.Equal(t, "in_progress", cmd.Status())
	})

	t.Run("unknown names are left to the state machine", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), "SHIPPED")

		require.NoError(t, err)
	})

	t.Run("requires status and id", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.UUID{}, "  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
