package otel_test

import (
	"context"
	"errors"
	"testing"

	"hotelsys/config"
	"hotelsys/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotelsys-test"

	ot := otel.New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "service", "service.Test")
	defer scope.End()

	assert.NotNil(t, ctx)
	assert.NotNil(t, scope)
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("store").Start(context.Background(), "store.Write")
	scope := otel.NewScope(span)

	rooms := 4
	scope.SetAttributes(map[string]any{
		"collection": "hotels",
		"rooms":      &rooms,
		"bytes":      int64(128),
		"atomic":     true,
	})
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("rename failed"))
	scope.End()

	spans := recorder.Ended()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "store.Write", spans[0].Name())
		assert.Len(t, spans[0].Attributes(), 4)
		assert.Len(t, spans[0].Events(), 1)
		assert.Equal(t, "rename failed", spans[0].Status().Description)
	}
}

// retainingExporter keeps exported spans readable after the provider shuts it down.
type retainingExporter struct {
	*tracetest.InMemoryExporter
	stopped bool
}

func (e *retainingExporter) Shutdown(context.Context) error {
	e.stopped = true

	return nil
}

func TestShutdown_FlushesBatchedSpans(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "hotelsys-test"

	exporter := &retainingExporter{InMemoryExporter: tracetest.NewInMemoryExporter()}
	ot := otel.NewWithExporter(cfg, exporter)

	_, scope := ot.NewScope(context.Background(), "service", "service.CreateReservation")
	scope.End()

	require.NoError(t, ot.Shutdown(context.Background()))

	spans := exporter.GetSpans()
	if assert.Len(t, spans, 1) {
		assert.Equal(t, "service.CreateReservation", spans[0].Name)
	}
	assert.True(t, exporter.stopped)
}
