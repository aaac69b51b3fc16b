package commands_test

import (
	"testing"
	"time"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// newTestOrder returns a pending order for owner priced 2 x 100 + 49.9 shipping.
func newTestOrder(t *testing.T, owner kernel.UUID, key string) *order.Order {
	t.Helper()

	line, err := order.NewLine("p1", "MAT-1", "Mug", kernel.MustMoney("100"), 2, "")
	require.NoError(t, err)
	amounts, err := order.NewAmounts(kernel.MustMoney("200"), kernel.MustMoney("49.9"), kernel.ZeroMoney, kernel.ZeroMoney)
	require.NoError(t, err)
	address, err := kernel.NewAddressSnapshot("Home", "Street 1", "Istanbul", "", "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), owner, []order.Line{line}, amounts, address, key, time.Now().UTC())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func confirmedTestOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	o := newTestOrder(t, owner, "")
	_, err := o.ConfirmPayment("txn_test", "mock", time.Now().UTC())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func shippedTestOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	o := confirmedTestOrder(t, owner)
	require.NoError(t, o.Ship("aras", "AR-1", time.Now().UTC()))
	o.ClearDomainEvents()
	return o
}
