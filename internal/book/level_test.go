package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiputravu/portman/internal/moneta"
	"github.com/saiputravu/portman/internal/order"
)

func mustParse(t *testing.T, s string) moneta.Decimal {
	t.Helper()
	d, err := moneta.Parse(s)
	require.NoError(t, err)
	return d
}

func TestLevel_PushBackTracksLiquidity(t *testing.T) {
	price := mustParse(t, "100.00")
	lvl := NewLevel(price)

	a := &order.Order{ID: 1, Quantity: mustParse(t, "2")}
	b := &order.Order{ID: 2, Quantity: mustParse(t, "3")}
	lvl.PushBack(a)
	lvl.PushBack(b)

	assert.Equal(t, "5", lvl.Liquidity.String())
	assert.False(t, lvl.Empty())
}

func TestLevel_FIFOOrder(t *testing.T) {
	lvl := NewLevel(mustParse(t, "100.00"))
	a := &order.Order{ID: 1, Quantity: mustParse(t, "1")}
	b := &order.Order{ID: 2, Quantity: mustParse(t, "1")}
	lvl.PushBack(a)
	lvl.PushBack(b)

	head, ok := lvl.PeekFront()
	require.True(t, ok)
	assert.Equal(t, int64(1), head.ID)

	popped, ok := lvl.PopFront()
	require.True(t, ok)
	assert.Equal(t, int64(1), popped.ID)

	head, ok = lvl.PeekFront()
	require.True(t, ok)
	assert.Equal(t, int64(2), head.ID)
}

func TestLevel_EmptyWhenLiquidityExhausted(t *testing.T) {
	lvl := NewLevel(mustParse(t, "100.00"))
	o := &order.Order{ID: 1, Quantity: mustParse(t, "2")}
	lvl.PushBack(o)

	o.Filled = mustParse(t, "2")
	lvl.Liquidity = lvl.Liquidity.Sub(mustParse(t, "2"))

	assert.True(t, lvl.Empty())
}
