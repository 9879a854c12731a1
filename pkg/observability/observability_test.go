package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalMetricsDefaultsToNoop(t *testing.T) {
	SetGlobalMetrics(nil)

	m := GetGlobalMetrics()
	require.NotNil(t, m)

	// Must not panic.
	ctx := context.Background()
	m.RecordResearchQuery(ctx, time.Second, 3, 100, nil)
	m.RecordToolExecution(ctx, "search_papers", time.Second, errors.New("boom"))
	m.RecordLLMCall(ctx, "gemini-2.5-flash", time.Second, 42, nil)
}

func TestSetGlobalMetrics(t *testing.T) {
	recorder := &fakeMetrics{}
	SetGlobalMetrics(recorder)
	defer SetGlobalMetrics(nil)

	GetGlobalMetrics().RecordToolExecution(context.Background(), "search_web", time.Millisecond, nil)

	assert.Equal(t, 1, recorder.toolCalls)
}

func TestInitMetricsInstallsGlobal(t *testing.T) {
	m, err := InitMetrics()
	require.NoError(t, err)
	defer SetGlobalMetrics(nil)

	assert.Same(t, Metrics(m), GetGlobalMetrics())

	// Instruments are wired; recording must not panic.
	m.RecordResearchQuery(context.Background(), time.Second, 2, 10, nil)
}

type fakeMetrics struct {
	toolCalls int
}

func (f *fakeMetrics) RecordResearchQuery(context.Context, time.Duration, int, int, error) {}

func (f *fakeMetrics) RecordToolExecution(context.Context, string, time.Duration, error) {
	f.toolCalls++
}

func (f *fakeMetrics) RecordLLMCall(context.Context, string, time.Duration, int, error) {}
