package rpc

import (
	"context"

	"google.golang.org/grpc"
)

// OrdersServiceServer is the service interface api/orders.proto describes.
type OrdersServiceServer interface {
	NewOrderBook(ctx context.Context, req *NewOrderBookRequest) (*NewOrderBookResponse, error)
	SubmitOrder(ctx context.Context, req *SubmitOrderRequest) (*SubmitOrderResponse, error)
}

// RegisterOrdersServiceServer attaches srv to s under the OrdersService name,
// exactly as a protoc-generated _grpc.pb.go would.
func RegisterOrdersServiceServer(s *grpc.Server, srv OrdersServiceServer) {
	s.RegisterService(&serviceDesc, srv)
}

func newOrderBookHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(NewOrderBookRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrdersServiceServer).NewOrderBook(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/orders.OrdersService/NewOrderBook"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrdersServiceServer).NewOrderBook(ctx, req.(*NewOrderBookRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func submitOrderHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	req := new(SubmitOrderRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrdersServiceServer).SubmitOrder(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/orders.OrdersService/SubmitOrder"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(OrdersServiceServer).SubmitOrder(ctx, req.(*SubmitOrderRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// serviceDesc mirrors the ServiceDesc a protoc-gen-go-grpc run would emit
// for api/orders.proto's OrdersService.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: "orders.OrdersService",
	HandlerType: (*OrdersServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "NewOrderBook", Handler: newOrderBookHandler},
		{MethodName: "SubmitOrder", Handler: submitOrderHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/orders.proto",
}
