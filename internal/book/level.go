// Package book implements the per-price-point resting-order queue (spec §4.2):
// aggregate liquidity plus a FIFO of resting orders, generalized from the
// teacher's internal/engine.PriceLevel (float64 price, slice-backed queue) to
// exact moneta.Decimal arithmetic.
package book

import (
	"github.com/saiputravu/portman/internal/moneta"
	"github.com/saiputravu/portman/internal/order"
)

// Level is all resting orders at one price, ordered by arrival time.
// Liquidity is maintained incrementally — it is never recomputed from the
// queue — so an empty-level check is an O(1) comparison against zero.
type Level struct {
	Price     moneta.Decimal
	Liquidity moneta.Decimal
	orders    []*order.Order
}

// NewLevel creates an empty level at price.
func NewLevel(price moneta.Decimal) *Level {
	return &Level{Price: price, Liquidity: moneta.Zero}
}

// PushBack appends o to the FIFO and increases Liquidity by its remaining
// (unfilled) quantity.
func (l *Level) PushBack(o *order.Order) {
	l.orders = append(l.orders, o)
	l.Liquidity = l.Liquidity.Add(o.Remaining())
}

// PeekFront returns the time-priority head of the queue without removing it.
func (l *Level) PeekFront() (*order.Order, bool) {
	if len(l.orders) == 0 {
		return nil, false
	}
	return l.orders[0], true
}

// PopFront removes and returns the time-priority head of the queue.
func (l *Level) PopFront() (*order.Order, bool) {
	if len(l.orders) == 0 {
		return nil, false
	}
	head := l.orders[0]
	l.orders[0] = nil
	l.orders = l.orders[1:]
	return head, true
}

// Empty reports whether the level has no remaining liquidity.
func (l *Level) Empty() bool {
	return moneta.IsZero(l.Liquidity)
}

// Orders returns the resting orders in time priority, for tests and
// diagnostics. Callers must not retain the slice across a mutating call.
func (l *Level) Orders() []*order.Order {
	return l.orders
}
