// Package tradesink implements the Trade Sink (spec §4.5): it converts the
// affected orders from a matching round into rows on the "trades" timeseries
// table and flushes them in a single batch.
//
// The shape is lifted from original_source/core/src/store.rs (an InfluxDB
// line-protocol buffer: table().symbol().symbol().column_f64().column_f64().at(),
// one flush per call) and re-grounded onto ClickHouse's native batch API,
// following wyfcoding-financialTrading's choice of ClickHouse as the
// timeseries store for this domain.
package tradesink

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"

	"github.com/saiputravu/portman/internal/order"
)

// ErrPrecisionLoss is returned when a Decimal cannot be represented as a
// float64 without loss — the sink fails rather than silently truncating.
var ErrPrecisionLoss = errors.New("tradesink: decimal to float64 conversion would lose precision")

const insertTrades = "INSERT INTO trades (symbol, side, price, quantity, ts)"

// Sink appends trade rows to ClickHouse. The underlying connection is a
// single reader-writer protected sender (spec §5): Save takes the write
// guard for the duration of the batch flush, serializing persistence across
// all symbols — exactly mirroring the Rust original's RwLock<Sender>.
type Sink struct {
	mu   sync.RWMutex
	conn clickhouse.Conn
}

// Open dials ClickHouse at dsn (spec §6's opaque DB_URL) and returns a ready
// Sink.
func Open(ctx context.Context, dsn string) (*Sink, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(ctx); err != nil {
		return nil, err
	}
	return &Sink{conn: conn}, nil
}

// Close releases the underlying connection.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.Close()
}

// Save appends one row per affected order to the trades table and flushes
// once. A single call is one flush: partial batch failures are not
// observable — the whole call either succeeds or fails (spec §4.5).
func (s *Sink) Save(ctx context.Context, symbol string, affected []*order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, err := s.conn.PrepareBatch(ctx, insertTrades)
	if err != nil {
		return err
	}

	ts := time.Now()
	for _, o := range affected {
		price, exact := o.Price.Float64()
		if !exact {
			return ErrPrecisionLoss
		}
		quantity, exact := o.Filled.Float64()
		if !exact {
			return ErrPrecisionLoss
		}

		if err := batch.Append(symbol, sideTag(o.Side), price, quantity, ts); err != nil {
			return err
		}
	}

	return batch.Send()
}

func sideTag(s order.Side) string {
	switch s {
	case order.Buy:
		return "buy"
	case order.Sell:
		return "sell"
	default:
		return "unknown"
	}
}
