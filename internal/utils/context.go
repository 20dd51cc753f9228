// Package utils provides small helpers shared by the vault packages:
// context keys, JSON response writing, the resty client wrapper, request
// integrity hashing and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that keys from other
// packages never collide with ours.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey is the context key under which the HTTP layer stores the
// request trace id.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id stored in ctx and whether one
// was present.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
