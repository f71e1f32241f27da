// Package eventbus implements the Event Publisher (spec §4.6): it serializes
// a compact summary of the orders affected by a matching round and publishes
// it to the durable message bus, awaiting acknowledgement before returning.
//
// Grounded on original_source/core/src/config.rs's async_nats::jetstream
// context and confirmed as the pack's message-bus choice via
// other_examples/manifests/{s2ungeda-cexoms,abdoElHodaky-tradSys}, which both
// depend on github.com/nats-io/nats.go.
package eventbus

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/saiputravu/portman/internal/order"
)

// Subject is the fixed subject processed-order notifications publish to.
const Subject = "orders.processed"

// processedOrder is the wire shape published per affected order: exactly an
// id and a status string, as spec §4.6 requires.
type processedOrder struct {
	ID     int64  `json:"id"`
	Status string `json:"status_string"`
}

// Publisher publishes to a NATS JetStream subject and waits for the broker's
// acknowledgement before Publish returns, giving callers durable delivery
// semantics.
type Publisher struct {
	nc *nats.Conn
	js jetstream.JetStream
}

// Connect dials the message bus at url and wraps it in a JetStream context.
func Connect(url string) (*Publisher, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, err
	}
	return &Publisher{nc: nc, js: js}, nil
}

// Close closes the underlying connection without draining it.
func (p *Publisher) Close() {
	p.nc.Close()
}

// Publish serializes affected as a JSON array of {id, status_string} and
// publishes it to Subject, blocking until the bus acknowledges receipt.
func (p *Publisher) Publish(ctx context.Context, affected []*order.Order) error {
	payload := make([]processedOrder, len(affected))
	for i, o := range affected {
		payload[i] = processedOrder{ID: o.ID, Status: o.Status.String()}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	_, err = p.js.Publish(ctx, Subject, body)
	return err
}
