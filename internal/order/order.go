// Package order defines the shared order data model (spec §3): the side,
// type, and status enumerations, and the Order record itself. It mirrors the
// shape of the teacher's internal/common package, generalized from
// float64/uint64 fields to exact moneta.Decimal arithmetic.
package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/saiputravu/portman/internal/moneta"
)

// Side is the direction of an order. The zero value is Unspecified and must
// never reach the matching core — the handler rejects it at the boundary.
type Side int

const (
	SideUnspecified Side = iota
	Buy
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// Type is the order's execution style.
type Type int

const (
	TypeUnspecified Type = iota
	Market
	Limit
)

func (t Type) String() string {
	switch t {
	case Market:
		return "market"
	case Limit:
		return "limit"
	default:
		return "unknown"
	}
}

// Status is the order's lifecycle state (spec §4.3.3). Cancelled is reserved
// by the data model but never produced by the current protocol (spec §1
// Non-goals: no cancel/amend operation is exposed).
type Status int

const (
	StatusUnspecified Status = iota
	Pending
	Fulfilled
	Cancelled
	Rejected
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "PENDING"
	case Fulfilled:
		return "FULFILLED"
	case Cancelled:
		return "CANCELLED"
	case Rejected:
		return "REJECTED"
	default:
		return "UNKNOWN"
	}
}

// Order is a single resting or taker order. Quantity is the original
// requested size and never mutates after creation; Filled is the cumulative
// filled amount and is the only field the matching core mutates on a resting
// order. Invariant at rest: Status == Pending && Filled < Quantity. Invariant
// when emitted as a trade event: Status == Fulfilled/Rejected && Filled ==
// Quantity - remaining (for Rejected, Filled < Quantity by definition).
type Order struct {
	ID       int64
	Side     Side
	Type     Type
	Status   Status
	Price    moneta.Decimal
	Quantity moneta.Decimal
	Filled   moneta.Decimal

	// CorrelationID is generated once per SubmitOrder call and set on the
	// order that call creates; it appears in the handler's market-order log
	// lines. Makers consumed by a later market order keep the id of their own
	// submission, and the trade sink does not write it. It is not part of the
	// wire protocol and never leaves the process.
	CorrelationID uuid.UUID
	ReceivedAt    time.Time
}

// Remaining returns the quantity still unfilled.
func (o *Order) Remaining() moneta.Decimal {
	return o.Quantity.Sub(o.Filled)
}
