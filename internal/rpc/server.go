package rpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/saiputravu/portman/internal/handler"
	"github.com/saiputravu/portman/internal/order"
)

// Server adapts the transport-agnostic handler.Handler onto
// OrdersServiceServer, translating wire messages to handler params and
// handler.Kind failures to grpc status codes (spec §7).
type Server struct {
	h *handler.Handler
}

// NewServer wraps h for grpc registration.
func NewServer(h *handler.Handler) *Server {
	return &Server{h: h}
}

func (s *Server) NewOrderBook(ctx context.Context, req *NewOrderBookRequest) (*NewOrderBookResponse, error) {
	err := s.h.NewOrderBook(ctx, handler.NewOrderBookParams{
		Symbol:            req.Symbol,
		PricePrecision:    int32(req.PricePrecision),
		QuantityPrecision: int32(req.QuantityPrecision),
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &NewOrderBookResponse{Result: ResultSuccess}, nil
}

func (s *Server) SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SubmitOrderResponse, error) {
	err := s.h.SubmitOrder(ctx, handler.SubmitOrderParams{
		Symbol:   req.Symbol,
		ID:       req.Order.ID,
		Side:     order.Side(req.Order.Side),
		Type:     order.Type(req.Order.Type),
		Status:   order.Status(req.Order.Status),
		Price:    req.Order.Price,
		Quantity: req.Order.Quantity,
	})
	if err != nil {
		return nil, toStatus(err)
	}
	return &SubmitOrderResponse{Result: ResultSuccess}, nil
}

// toStatus maps a handler.Error's Kind to the grpc status its Kind.Status()
// names (spec §7's Mapped-status column, including the NotFound→Internal
// quirk preserved from the original source).
func toStatus(err error) error {
	var herr *handler.Error
	if !errors.As(err, &herr) {
		return status.Error(codes.Internal, err.Error())
	}

	switch herr.Kind.Status() {
	case "InvalidArgument":
		return status.Error(codes.InvalidArgument, herr.Error())
	case "AlreadyExists":
		return status.Error(codes.AlreadyExists, herr.Error())
	case "Unavailable":
		return status.Error(codes.Unavailable, herr.Error())
	default:
		return status.Error(codes.Internal, herr.Error())
	}
}
