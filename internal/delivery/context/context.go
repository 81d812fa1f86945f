// Package context carries request-scoped values between the transports and the
// use cases: the request or connection id, a tagged logger, and the principal.
package context

import (
	"context"
	"log/slog"

	"restops/internal/domain/constants"
	"restops/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID holds the HTTP request id or the WebSocket connection id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger holds the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// KeyPrincipal holds the authenticated staff member.
	KeyPrincipal ContextKey = "principal"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context, generating one if absent.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID, or "" when unset.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetPrincipal stores the authenticated principal on both the echo context and
// the request context.
func SetPrincipal(c echo.Context, principal entity.Principal) {
	c.Set(constants.ContextKeyPrincipal, principal)
	c.SetRequest(c.Request().WithContext(WithPrincipal(c.Request().Context(), principal)))
}

// GetPrincipal returns the principal stored by SetPrincipal.
func GetPrincipal(c echo.Context) (entity.Principal, bool) {
	principal, ok := c.Get(constants.ContextKeyPrincipal).(entity.Principal)

	return principal, ok
}

// WithPrincipal returns a new context with the principal.
func WithPrincipal(ctx context.Context, principal entity.Principal) context.Context {
	return context.WithValue(ctx, KeyPrincipal, principal)
}

// PrincipalFromContext returns the principal stored by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (entity.Principal, bool) {
	principal, ok := ctx.Value(KeyPrincipal).(entity.Principal)

	return principal, ok
}
