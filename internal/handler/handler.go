// Package handler implements the Request Handler (spec §4.7): the
// validate-dispatch-respond pipeline shared by every transport. It depends
// on neither grpc nor JSON — internal/rpc adapts the wire shapes in
// SPEC_FULL §6.1 onto these calls.
package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/saiputravu/portman/internal/engine"
	"github.com/saiputravu/portman/internal/moneta"
	"github.com/saiputravu/portman/internal/order"
	"github.com/saiputravu/portman/internal/registry"
	"github.com/saiputravu/portman/internal/wpool"

	tomb "gopkg.in/tomb.v2"
)

// Saver is the persistence seam SubmitOrder's market-order dispatch writes
// through (satisfied by *tradesink.Sink). Named here rather than imported
// from internal/tradesink so tests can fake it without a live ClickHouse
// connection.
type Saver interface {
	Save(ctx context.Context, symbol string, affected []*order.Order) error
}

// Publisher is the event-bus seam SubmitOrder's market-order dispatch writes
// through (satisfied by *eventbus.Publisher). Named here rather than
// imported from internal/eventbus so tests can fake it without a live NATS
// connection.
type Publisher interface {
	Publish(ctx context.Context, affected []*order.Order) error
}

// NewOrderBookParams is the transport-agnostic input to NewOrderBook.
type NewOrderBookParams struct {
	Symbol            string
	PricePrecision    int32
	QuantityPrecision int32
}

// SubmitOrderParams is the transport-agnostic input to SubmitOrder: the raw
// wire fields, not yet decoded to moneta.Decimal or validated.
type SubmitOrderParams struct {
	Symbol   string
	ID       int64
	Side     order.Side
	Type     order.Type
	Status   order.Status
	Price    string
	Quantity string
}

// Handler wires the registry, trade sink, and event publisher into the
// request pipeline spec §4.7 describes.
type Handler struct {
	Registry  *registry.Registry
	Sink      Saver
	Publisher Publisher
	Pool      *wpool.Pool
	Tomb      *tomb.Tomb
}

// New constructs a Handler over its collaborators.
func New(reg *registry.Registry, sink Saver, pub Publisher, pool *wpool.Pool, t *tomb.Tomb) *Handler {
	return &Handler{Registry: reg, Sink: sink, Publisher: pub, Pool: pool, Tomb: t}
}

// NewOrderBook validates and creates a fresh order book for a symbol.
func (h *Handler) NewOrderBook(ctx context.Context, p NewOrderBookParams) error {
	if p.Symbol == "" {
		return newErr(KindInvalidArgument, "NewOrderBook", errors.New("symbol must be non-empty"))
	}
	if p.PricePrecision < 0 || p.QuantityPrecision < 0 {
		return newErr(KindInvalidArgument, "NewOrderBook", errors.New("precision out of supported scale range"))
	}

	precision := moneta.Precision{Price: p.PricePrecision, Quantity: p.QuantityPrecision}
	if err := h.Registry.Create(p.Symbol, precision); err != nil {
		if errors.Is(err, registry.ErrAlreadyExists) {
			return newErr(KindAlreadyExists, "NewOrderBook", err)
		}
		return newErr(KindInternal, "NewOrderBook", err)
	}

	log.Info().Str("symbol", p.Symbol).Int32("price_precision", p.PricePrecision).
		Int32("quantity_precision", p.QuantityPrecision).Msg("order book created")
	return nil
}

// SubmitOrder runs the validation sequence from spec §4.7 in order, then
// dispatches to the matching core and, for market orders, the persistence
// and publication pipeline.
func (h *Handler) SubmitOrder(ctx context.Context, p SubmitOrderParams) error {
	correlationID := uuid.New()

	switch p.Side {
	case order.Buy, order.Sell:
	default:
		return newErr(KindInvalidArgument, "SubmitOrder", errors.New("unrecognized order side"))
	}
	switch p.Type {
	case order.Market, order.Limit:
	default:
		return newErr(KindInvalidArgument, "SubmitOrder", errors.New("unrecognized order type"))
	}
	switch p.Status {
	case order.Pending, order.Fulfilled, order.Cancelled, order.Rejected:
	default:
		return newErr(KindInvalidArgument, "SubmitOrder", errors.New("unrecognized order status"))
	}

	ob, err := h.Registry.Lookup(p.Symbol)
	if err != nil {
		// spec §7: NotFound is deliberately surfaced as Internal at the
		// status boundary, but the Kind itself still names the real cause.
		return newErr(KindNotFound, "SubmitOrder", err)
	}

	price, err := moneta.Parse(p.Price)
	if err != nil {
		return newErr(KindInvalidArgument, "SubmitOrder", err)
	}
	quantity, err := moneta.Parse(p.Quantity)
	if err != nil {
		return newErr(KindInvalidArgument, "SubmitOrder", err)
	}
	price = moneta.Round(price, ob.Precision.Price)
	quantity = moneta.Round(quantity, ob.Precision.Quantity)

	if moneta.IsZero(quantity) {
		return newErr(KindInvalidArgument, "SubmitOrder", errors.New("quantity must be non-zero"))
	}

	o := &order.Order{
		ID:            p.ID,
		Side:          p.Side,
		Type:          p.Type,
		Status:        p.Status,
		Price:         price,
		Quantity:      quantity,
		CorrelationID: correlationID,
		ReceivedAt:    time.Now(),
	}

	switch p.Type {
	case order.Limit:
		if err := ob.LimitOrder(o); err != nil {
			return newErr(KindInternal, "SubmitOrder", err)
		}
		return nil
	case order.Market:
		return h.submitMarket(ctx, ob, o)
	default:
		return newErr(KindInvalidArgument, "SubmitOrder", errors.New("unrecognized order type"))
	}
}

// submitMarket runs matching, then persistence and publication, gated by
// the bounded-concurrency pool so a burst of market orders cannot pile up
// unbounded ClickHouse batch flushes in flight at once (SPEC_FULL §5.1).
func (h *Handler) submitMarket(ctx context.Context, ob *engine.OrderBook, o *order.Order) error {
	affected, err := ob.MarketOrder(o)
	if err != nil {
		return newErr(KindInternal, "SubmitOrder", err)
	}

	err = h.Pool.Do(h.Tomb, func() error {
		if err := h.Sink.Save(ctx, ob.Symbol, affected); err != nil {
			return err
		}
		return h.Publisher.Publish(ctx, affected)
	})
	if err != nil {
		if errors.Is(err, tomb.ErrDying) {
			return newErr(KindUnavailable, "SubmitOrder", err)
		}
		log.Error().Err(err).Str("symbol", ob.Symbol).Str("correlation_id", o.CorrelationID.String()).
			Msg("post-match persistence or publication failed; match was not rolled back")
		return newErr(KindInternal, "SubmitOrder", err)
	}

	log.Info().Str("symbol", ob.Symbol).Str("correlation_id", o.CorrelationID.String()).
		Int("affected", len(affected)).Msg("market order matched")
	return nil
}
