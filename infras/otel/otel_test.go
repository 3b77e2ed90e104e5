package otel_test

import (
	"context"
	"errors"
	"testing"

	"ecoparking/config"
	"ecoparking/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewWithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}

	tracer := otel.New(cfg)

	ctx, scope := tracer.NewScope(context.Background(), "service", "service.Reserve")
	assert.NotNil(t, ctx)

	scope.SetAttribute("space_id", int64(3))
	scope.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestEndWithErrorRecordsNamedError(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	run := func() (err error) {
		_, span := provider.Tracer("service").Start(context.Background(), "service.Checkout")
		scope := otel.NewScope(span)
		defer scope.EndWithError(&err)

		return errors.New("space has no active reservation")
	}

	require.Error(t, run())

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "space has no active reservation", spans[0].Status().Description)
}
