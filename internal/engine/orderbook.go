// Package engine implements the per-symbol matching core (spec §4.3),
// generalized from the teacher's internal/engine.OrderBook: bids/asks are
// still tidwall/btree-keyed price levels, but the key is now an exact
// moneta.Decimal instead of float64, and market-order matching returns the
// affected-orders slice the spec's side-effect pipeline (C5/C6) needs instead
// of firing an engine-owned Trade callback.
package engine

import (
	"errors"
	"sync"

	"github.com/tidwall/btree"

	"github.com/saiputravu/portman/internal/book"
	"github.com/saiputravu/portman/internal/moneta"
	"github.com/saiputravu/portman/internal/order"
)

// ErrUnknownSide is returned when an order carries an unspecified or
// otherwise unrecognized side. The handler is expected to reject this before
// it ever reaches the matching core (spec §4.3.4); it is kept here as a
// defensive sentinel for direct callers (e.g. tests).
var ErrUnknownSide = errors.New("engine: unknown order side")

// OrderBook is a single symbol's live book: two price-ordered sides, each
// independently lockable. No operation ever takes both side guards at once
// (spec §5) — market orders only touch the opposite side from their own,
// and limit orders only touch their own side.
type OrderBook struct {
	Symbol    string
	Precision moneta.Precision

	bidsMu sync.RWMutex
	bids   *btree.BTreeG[*book.Level]

	asksMu sync.RWMutex
	asks   *btree.BTreeG[*book.Level]
}

// New creates an empty order book for symbol at the given precision.
func New(symbol string, precision moneta.Precision) *OrderBook {
	return &OrderBook{
		Symbol:    symbol,
		Precision: precision,
		// Sorted so iteration visits the highest bid first.
		bids: btree.NewBTreeG(func(a, b *book.Level) bool {
			return a.Price.GreaterThan(b.Price)
		}),
		// Sorted so iteration visits the lowest ask first.
		asks: btree.NewBTreeG(func(a, b *book.Level) bool {
			return a.Price.LessThan(b.Price)
		}),
	}
}

func (ob *OrderBook) sideFor(s order.Side) (*sync.RWMutex, *btree.BTreeG[*book.Level], error) {
	switch s {
	case order.Buy:
		return &ob.bidsMu, ob.bids, nil
	case order.Sell:
		return &ob.asksMu, ob.asks, nil
	default:
		return nil, nil, ErrUnknownSide
	}
}

func (ob *OrderBook) opposite(s order.Side) (*sync.RWMutex, *btree.BTreeG[*book.Level], error) {
	switch s {
	case order.Buy:
		return &ob.asksMu, ob.asks, nil
	case order.Sell:
		return &ob.bidsMu, ob.bids, nil
	default:
		return nil, nil, ErrUnknownSide
	}
}

// LimitOrder rests o on its own side at its quoted price (spec §4.3.1). It
// is pure book insertion: an aggressive limit order that would cross the
// spread is not matched against the opposite side (see DESIGN.md Open
// Question #1 — kept as specified).
func (ob *OrderBook) LimitOrder(o *order.Order) error {
	mu, side, err := ob.sideFor(o.Side)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	lvl, ok := side.Get(&book.Level{Price: o.Price})
	if !ok {
		lvl = book.NewLevel(o.Price)
		side.Set(lvl)
	}
	lvl.PushBack(o)
	return nil
}

// MarketOrder matches o against the opposite side in price-time priority
// until either o is exhausted or the opposite side is empty (spec §4.3.2).
// It returns every maker order it fully consumed plus o itself in its
// terminal state (Fulfilled if fully matched, Rejected otherwise).
func (ob *OrderBook) MarketOrder(o *order.Order) ([]*order.Order, error) {
	mu, side, err := ob.opposite(o.Side)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	var affected []*order.Order
	var drained []*book.Level

	side.Scan(func(lvl *book.Level) bool {
		for !moneta.IsZero(o.Remaining()) {
			head, ok := lvl.PeekFront()
			if !ok {
				break
			}

			fill := moneta.Min(o.Remaining(), head.Remaining())
			o.Filled = o.Filled.Add(fill)
			head.Filled = head.Filled.Add(fill)
			lvl.Liquidity = lvl.Liquidity.Sub(fill)

			if moneta.IsZero(head.Remaining()) {
				lvl.PopFront()
				head.Status = order.Fulfilled
				affected = append(affected, head)
			}
		}

		if lvl.Empty() {
			drained = append(drained, lvl)
		}

		// Stop walking levels once the taker is fully filled.
		return !moneta.IsZero(o.Remaining())
	})

	for _, lvl := range drained {
		side.Delete(lvl)
	}

	if moneta.IsZero(o.Remaining()) {
		o.Status = order.Fulfilled
	} else {
		o.Status = order.Rejected
	}
	affected = append(affected, o)

	return affected, nil
}

// Bids returns resting bid levels, highest price first. For tests and
// diagnostics only — callers must not mutate the returned levels.
func (ob *OrderBook) Bids() []*book.Level {
	ob.bidsMu.RLock()
	defer ob.bidsMu.RUnlock()
	return snapshot(ob.bids)
}

// Asks returns resting ask levels, lowest price first. For tests and
// diagnostics only — callers must not mutate the returned levels.
func (ob *OrderBook) Asks() []*book.Level {
	ob.asksMu.RLock()
	defer ob.asksMu.RUnlock()
	return snapshot(ob.asks)
}

func snapshot(t *btree.BTreeG[*book.Level]) []*book.Level {
	out := make([]*book.Level, 0, t.Len())
	t.Scan(func(lvl *book.Level) bool {
		out = append(out, lvl)
		return true
	})
	return out
}
