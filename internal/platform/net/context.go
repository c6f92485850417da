// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyChartID ctxKey = "chart_id"

// WithRequest annotates context with common request scoped ids
func WithRequest(ctx context.Context, reqID, chartID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if chartID != "" {
		ctx = context.WithValue(ctx, keyChartID, chartID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	if v := chimw.GetReqID(ctx); v != "" {
		return v
	}
	return ""
}

// ChartID returns the chart id on the context if present
func ChartID(ctx context.Context) string {
	if v, ok := ctx.Value(keyChartID).(string); ok {
		return v
	}
	return ""
}
