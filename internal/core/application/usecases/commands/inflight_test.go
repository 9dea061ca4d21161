package commands_test

import (
	"testing"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/application/usecases/commands"
	"github.com/leeboxuan/opsflow-erp-mobile/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightOrders(t *testing.T) {
	t.Run("second_claim_for_same_order_is_rejected", func(t *testing.T) {
		reg := commands.NewInflightOrders()
		orderID := kernel.NewUUID()

		require.NoError(t, reg.Begin(orderID))
		err := reg.Begin(orderID)

		assert.ErrorIs(t, err, commands.ErrAssignAlreadyInProgress)
	})

	t.Run("claims_are_per_order", func(t *testing.T) {
		reg := commands.NewInflightOrders()

		require.NoError(t, reg.Begin(kernel.NewUUID()))
		assert.NoError(t, reg.Begin(kernel.NewUUID()))
	})

	t.Run("end_releases_the_claim", func(t *testing.T) {
		reg := commands.NewInflightOrders()
		orderID := kernel.NewUUID()

		require.NoError(t, reg.Begin(orderID))
		reg.End(orderID)

		assert.NoError(t, reg.Begin(orderID))
	})

	t.Run("end_without_claim_is_a_no_op", func(t *testing.T) {
		reg := commands.NewInflightOrders()
		reg.End(kernel.NewUUID())
	})
}
