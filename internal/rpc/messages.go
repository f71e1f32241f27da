// Package rpc binds OrdersService (SPEC_FULL §6.1) onto google.golang.org/grpc
// using the JSON wire codec in internal/rpcjson, in place of a
// protoc-generated binding (see DESIGN.md Open Question #3). Message field
// layout and enum numbering mirror api/orders.proto exactly, so swapping in
// a real generated binding later is a drop-in replacement.
package rpc

// Wire enum values match api/orders.proto numbering exactly, and in turn
// match internal/order's Side/Type/Status constants one-for-one — no
// translation table is needed between the wire and domain enums.
const (
	ResultUnspecified int32 = 0
	ResultSuccess     int32 = 1
)

// WireOrder is the wire shape of an Order message.
type WireOrder struct {
	ID       int64  `json:"id"`
	Side     int32  `json:"side"`
	Type     int32  `json:"type"`
	Status   int32  `json:"status"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
}

type NewOrderBookRequest struct {
	Symbol            string `json:"symbol"`
	PricePrecision    uint32 `json:"price_precision"`
	QuantityPrecision uint32 `json:"quantity_precision"`
}

type NewOrderBookResponse struct {
	Result int32 `json:"result"`
}

type SubmitOrderRequest struct {
	Symbol string    `json:"symbol"`
	Order  WireOrder `json:"order"`
}

type SubmitOrderResponse struct {
	Result int32 `json:"result"`
}
