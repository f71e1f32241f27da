package rpc

import (
	"context"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RecoveryInterceptor turns a panic during a unary call into an Internal
// status instead of taking down the process. Go's sync.RWMutex has no
// Rust-style poisoning: a panic while a book's guard is held simply unwinds
// past the Unlock deferred in internal/engine, releasing the guard with
// whatever partial mutation had already happened. This interceptor is the
// Go-idiomatic substitute for spec §5's "poisoned guard" contract — the
// offending call fails as Internal and the book should be considered
// degraded, but the process and every other symbol's book keep running.
func RecoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("method", info.FullMethod).
				Msg("recovered from panic; request failed, affected book should be considered degraded")
			err = status.Errorf(codes.Internal, "internal error: %v", r)
		}
	}()
	return handler(ctx, req)
}
