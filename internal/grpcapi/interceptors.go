// Package grpcapi exposes the orchestrator's control-plane and bulk-data
// RPC surface. Interceptor scaffolding here is adapted nearly verbatim from
// coreengine/grpc/interceptors.go: same chaining idiom, same panic-recovery
// shape, generalized to also install the OpenTelemetry gRPC stats handler
// the teacher's go.mod already depends on
// (contrib/instrumentation/google.golang.org/grpc/otelgrpc) but never
// wires in.
package grpcapi

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Logger is the structured key-value logging contract shared by every
// server in this package, matching coreengine/grpc/server.go's Logger.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}

// LoggingInterceptor logs the start, duration, and result of each unary
// RPC.
func LoggingInterceptor(logger Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		duration := time.Since(start)

		if err != nil {
			st, _ := status.FromError(err)
			logger.Error("grpc_request_failed",
				"method", info.FullMethod,
				"duration_ms", duration.Milliseconds(),
				"code", st.Code().String(),
				"error", err.Error(),
			)
		} else {
			logger.Debug("grpc_request_completed",
				"method", info.FullMethod,
				"duration_ms", duration.Milliseconds(),
			)
		}
		return resp, err
	}
}

// StreamLoggingInterceptor is the streaming analogue of LoggingInterceptor.
func StreamLoggingInterceptor(logger Logger) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		start := time.Now()
		logger.Debug("grpc_stream_started", "method", info.FullMethod)

		err := handler(srv, ss)
		duration := time.Since(start)

		if err != nil {
			st, _ := status.FromError(err)
			logger.Error("grpc_stream_failed",
				"method", info.FullMethod,
				"duration_ms", duration.Milliseconds(),
				"code", st.Code().String(),
				"error", err.Error(),
			)
		} else {
			logger.Debug("grpc_stream_completed",
				"method", info.FullMethod,
				"duration_ms", duration.Milliseconds(),
			)
		}
		return err
	}
}

// RecoveryHandler is called when a panic is recovered from a handler.
type RecoveryHandler func(p interface{}) error

func defaultRecoveryHandler(p interface{}) error {
	return status.Errorf(codes.Internal, "panic recovered: %v", p)
}

// RecoveryInterceptor recovers from panics in unary handlers, logging the
// stack trace and returning an Internal error instead of crashing the
// orchestrator process.
func RecoveryInterceptor(logger Logger, handler RecoveryHandler) grpc.UnaryServerInterceptor {
	if handler == nil {
		handler = defaultRecoveryHandler
	}
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		grpcHandler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error("grpc_panic_recovered",
					"method", info.FullMethod,
					"panic", fmt.Sprintf("%v", p),
					"stack", string(debug.Stack()),
				)
				err = handler(p)
			}
		}()
		return grpcHandler(ctx, req)
	}
}

// StreamRecoveryInterceptor is the streaming analogue of RecoveryInterceptor.
func StreamRecoveryInterceptor(logger Logger, handler RecoveryHandler) grpc.StreamServerInterceptor {
	if handler == nil {
		handler = defaultRecoveryHandler
	}
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		grpcHandler grpc.StreamHandler,
	) (err error) {
		defer func() {
			if p := recover(); p != nil {
				logger.Error("grpc_stream_panic_recovered",
					"method", info.FullMethod,
					"panic", fmt.Sprintf("%v", p),
					"stack", string(debug.Stack()),
				)
				err = handler(p)
			}
		}()
		return grpcHandler(srv, ss)
	}
}

// ChainUnaryInterceptors composes interceptors in call order: the first
// argument wraps the second, and so on.
func ChainUnaryInterceptors(interceptors ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptor := interceptors[i]
			currentHandler := chain
			chain = func(ctx context.Context, req interface{}) (interface{}, error) {
				return interceptor(ctx, req, info, currentHandler)
			}
		}
		return chain(ctx, req)
	}
}

// ChainStreamInterceptors is the streaming analogue of ChainUnaryInterceptors.
func ChainStreamInterceptors(interceptors ...grpc.StreamServerInterceptor) grpc.StreamServerInterceptor {
	return func(
		srv interface{},
		ss grpc.ServerStream,
		info *grpc.StreamServerInfo,
		handler grpc.StreamHandler,
	) error {
		chain := handler
		for i := len(interceptors) - 1; i >= 0; i-- {
			interceptor := interceptors[i]
			currentHandler := chain
			chain = func(srv interface{}, ss grpc.ServerStream) error {
				return interceptor(srv, ss, info, currentHandler)
			}
		}
		return chain(srv, ss)
	}
}

// ServerOptions builds the standard set of server options every endpoint in
// this module uses: panic recovery, request logging, and OpenTelemetry
// span/metric instrumentation via the gRPC stats handler.
func ServerOptions(logger Logger) []grpc.ServerOption {
	unary := ChainUnaryInterceptors(
		RecoveryInterceptor(logger, nil),
		LoggingInterceptor(logger),
	)
	stream := ChainStreamInterceptors(
		StreamRecoveryInterceptor(logger, nil),
		StreamLoggingInterceptor(logger),
	)

	return []grpc.ServerOption{
		grpc.UnaryInterceptor(unary),
		grpc.StreamInterceptor(stream),
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
	}
}
