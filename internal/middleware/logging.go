package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call.
// It logs the procedure name, user ID, duration, and any error codes/messages.
// Expected client errors are logged at warn level, everything else at error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", procedure,
				"peer", req.Peer().Addr,
				"duration_ms", time.Since(start).Milliseconds(),
			}
			// Empty when this interceptor is installed outside the auth one
			if userID := GetUserID(ctx); userID != "" {
				attrs = append(attrs, "user_id", userID)
			}

			if err == nil {
				logger.InfoContext(ctx, "RPC ok", attrs...)
				return resp, nil
			}

			var connectErr *connect.Error
			if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown {
				attrs = append(attrs, "code", connectErr.Code(), "error", connectErr.Message())
				logger.WarnContext(ctx, "RPC error", attrs...)
			} else {
				attrs = append(attrs, "code", connect.CodeOf(err), "error", err)
				logger.ErrorContext(ctx, "RPC error", attrs...)
			}
			return resp, err
		}
	}
}
