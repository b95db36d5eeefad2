// Package ctxutil provides utilities for injecting and retrieving metadata via go context.
package ctxutil

import (
	"context"

	"go.uber.org/zap"
)

type zapFieldsKeyType struct{}

// Note: This MUST be unexported to ensure that it is not accessible from other packages
var zapFieldsKey = zapFieldsKeyType{}

// WithZapFields injects the zap fields into the context and returns the combined field set.
// Fields already on the context come after the new ones.
func WithZapFields(ctx context.Context, fields ...zap.Field) (context.Context, []zap.Field) {
	if ctx == nil {
		ctx = context.Background()
	}
	existing := ZapFields(ctx)
	combined := make([]zap.Field, 0, len(fields)+len(existing))
	combined = append(combined, fields...)
	combined = append(combined, existing...)
	return context.WithValue(ctx, zapFieldsKey, combined), combined
}

// ZapFields retrieves the zap fields from the context
func ZapFields(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	if val, ok := ctx.Value(zapFieldsKey).([]zap.Field); ok && val != nil {
		return val
	}
	return []zap.Field{}
}
