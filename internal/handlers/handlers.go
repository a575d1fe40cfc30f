// Package handlers implements the HTTP endpoints of the guild API.
package handlers

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/promptcraft/guild-api/internal/handlers")

// Engine variants, used as metric labels and in published events
const (
	VariantReal = "real"
	VariantMock = "mock"
)

func cancelled(ctx context.Context, err error) bool {
	return ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded))
}
