package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestNewRunIDIsUnique(t *testing.T) {
	a := NewRunID()
	b := NewRunID()
	require.NotEqual(t, a, b)
	require.NotEmpty(t, string(a))
}

func TestStartRunAndFileProduceSpans(t *testing.T) {
	tp := NewTracerProvider()
	defer tp.Shutdown(context.Background())
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	defer otel.SetTracerProvider(prev)

	ctx, runSpan := StartRun(context.Background(), NewRunID())
	require.NotNil(t, runSpan)
	defer runSpan.End()

	_, fileSpan := StartFile(ctx, "file:///a.php")
	require.NotNil(t, fileSpan)
	fileSpan.End()
}

func TestCountFileUpdatesCounters(t *testing.T) {
	before := testutil.ToFloat64(FilesIndexedTotal)
	CountFile(nil, 3, 5)
	after := testutil.ToFloat64(FilesIndexedTotal)
	require.Greater(t, after, before)
}
