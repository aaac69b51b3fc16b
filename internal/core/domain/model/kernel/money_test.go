package kernel_test

import (
	"testing"

	"checkout/internal/core/domain/model/kernel"
	"checkout/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		for _, s := range []string{"0", "0.01", "49.9", "1000"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(s))

			require.NoError(t, err, s)
			assert.True(t, m.Decimal().Equal(decimal.RequireFromString(s)))
		}
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoneyFromString(t *testing.T) {
	_, err := kernel.MoneyFromString("12,50")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	m, err := kernel.MoneyFromString("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", m.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	price := kernel.MustMoney("100")

	line := price.MulQty(3)
	assert.Equal(t, "300.00", line.String())

	total := line.Add(kernel.MustMoney("49.9"))
	assert.Equal(t, "349.90", total.String())
	assert.InDelta(t, 349.9, total.Float64(), 0.0001)

	assert.Equal(t, "300.00", total.Sub(kernel.MustMoney("49.9")).String())
	assert.True(t, total.GreaterThanOrEqual(line))
	assert.False(t, line.GreaterThanOrEqual(total))
	assert.True(t, kernel.ZeroMoney.IsZero())
	assert.True(t, kernel.MustMoney("1.10").Equal(kernel.MustMoney("1.1")))
}

func TestMoney_DecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3 in money arithmetic.
	sum := kernel.MustMoney("0.1").Add(kernel.MustMoney("0.2"))

	assert.True(t, sum.Equal(kernel.MustMoney("0.3")))
}

func TestMustMoney_PanicsOnBadInput(t *testing.T) {
	assert.Panics(t, func() { kernel.MustMoney("-1") })
	assert.Panics(t, func() { kernel.MustMoney("abc") })
}
