package engine

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

func newTestBook(t *testing.T) *OrderBook {
	t.Helper()
	return New("BTC/USD", moneta.Precision{Price: 2, Quantity: 2})
}

func TestLimitOrder_RestsOnOwnSide(t *testing.T) {
	ob := newTestBook(t)
	o := &order.Order{ID: 1, Side: order.Buy, Price: mustParse(t, "20050.40"), Quantity: mustParse(t, "1.00")}

	require.NoError(t, ob.LimitOrder(o))

	bids := ob.Bids()
	require.Len(t, bids, 1)
	assert.Equal(t, "20050.4", bids[0].Price.String())
	assert.Equal(t, "1", o.Quantity.String())
	assert.True(t, moneta.IsZero(o.Filled))
}

func TestMarketOrder_FullyMatchedFromOneLevel(t *testing.T) {
	ob := newTestBook(t)
	a := &order.Order{ID: 1, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "2")}
	b := &order.Order{ID: 2, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "3")}
	require.NoError(t, ob.LimitOrder(a))
	require.NoError(t, ob.LimitOrder(b))

	taker := &order.Order{ID: 3, Side: order.Buy, Quantity: mustParse(t, "4")}
	affected, err := ob.MarketOrder(taker)
	require.NoError(t, err)

	require.Len(t, affected, 2)
	assert.Equal(t, int64(1), affected[0].ID)
	assert.Equal(t, order.Fulfilled, affected[0].Status)
	assert.Equal(t, "2", affected[0].Filled.String())

	assert.Equal(t, int64(3), affected[1].ID)
	assert.Equal(t, order.Fulfilled, affected[1].Status)
	assert.Equal(t, "4", affected[1].Filled.String())

	asks := ob.Asks()
	require.Len(t, asks, 1)
	require.Len(t, asks[0].Orders(), 1)
	assert.Equal(t, int64(2), asks[0].Orders()[0].ID)
	assert.Equal(t, "2", asks[0].Orders()[0].Filled.String())
	assert.Equal(t, "1", asks[0].Liquidity.String())
}

func TestMarketOrder_CrossesMultipleLevelsWithPartialRemainder(t *testing.T) {
	ob := newTestBook(t)
	first := &order.Order{ID: 1, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "1")}
	second := &order.Order{ID: 2, Side: order.Sell, Price: mustParse(t, "101.00"), Quantity: mustParse(t, "1")}
	require.NoError(t, ob.LimitOrder(first))
	require.NoError(t, ob.LimitOrder(second))

	taker := &order.Order{ID: 3, Side: order.Buy, Quantity: mustParse(t, "3")}
	affected, err := ob.MarketOrder(taker)
	require.NoError(t, err)

	require.Len(t, affected, 3)
	assert.Equal(t, order.Fulfilled, affected[0].Status)
	assert.Equal(t, order.Fulfilled, affected[1].Status)
	assert.Equal(t, order.Rejected, affected[2].Status)
	assert.Equal(t, "2", affected[2].Filled.String())

	assert.Empty(t, ob.Asks())
}

func TestMarketOrder_AgainstEmptySide(t *testing.T) {
	ob := newTestBook(t)
	taker := &order.Order{ID: 1, Side: order.Buy, Quantity: mustParse(t, "1")}

	affected, err := ob.MarketOrder(taker)
	require.NoError(t, err)

	require.Len(t, affected, 1)
	assert.Equal(t, order.Rejected, affected[0].Status)
	assert.True(t, moneta.IsZero(affected[0].Filled))
	assert.Empty(t, ob.Asks())
	assert.Empty(t, ob.Bids())
}

func TestMarketOrder_TimePriorityWithinSameLevel(t *testing.T) {
	ob := newTestBook(t)
	a := &order.Order{ID: 1, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "1")}
	b := &order.Order{ID: 2, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "1")}
	require.NoError(t, ob.LimitOrder(a))
	require.NoError(t, ob.LimitOrder(b))

	taker := &order.Order{ID: 3, Side: order.Buy, Quantity: mustParse(t, "1")}
	affected, err := ob.MarketOrder(taker)
	require.NoError(t, err)

	require.Len(t, affected, 2)
	assert.Equal(t, int64(1), affected[0].ID, "earlier-arriving order at the same price must fill first")
}

func TestMarketOrder_PriceriorityAcrossLevels(t *testing.T) {
	ob := newTestBook(t)
	expensive := &order.Order{ID: 1, Side: order.Sell, Price: mustParse(t, "101.00"), Quantity: mustParse(t, "1")}
	cheap := &order.Order{ID: 2, Side: order.Sell, Price: mustParse(t, "100.00"), Quantity: mustParse(t, "1")}
	require.NoError(t, ob.LimitOrder(expensive))
	require.NoError(t, ob.LimitOrder(cheap))

	taker := &order.Order{ID: 3, Side: order.Buy, Quantity: mustParse(t, "1")}
	affected, err := ob.MarketOrder(taker)
	require.NoError(t, err)

	require.Len(t, affected, 2)
	assert.Equal(t, int64(2), affected[0].ID, "a buy market order must visit the lowest ask first")
}

func TestMarketOrder_UnknownSideRejected(t *testing.T) {
	ob := newTestBook(t)
	_, err := ob.MarketOrder(&order.Order{ID: 1, Side: order.SideUnspecified, Quantity: mustParse(t, "1")})
	assert.ErrorIs(t, err, ErrUnknownSide)
}
