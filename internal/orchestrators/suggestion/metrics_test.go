package suggestion

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/interfacing/internal/entities"
)

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.recordGeneration(modeFree, outcomeGenerated)
	m.recordGeneration(modeFree, outcomeCached)
	m.recordGeneration(modeFree, outcomeCached)
	m.recordExecution(entities.ResultCriticalFailure)
	m.recordFallback()
	m.recordParsed(3)

	assert.InDelta(t, 1, testutil.ToFloat64(m.generations.WithLabelValues(modeFree, outcomeGenerated)), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.generations.WithLabelValues(modeFree, outcomeCached)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.executions.WithLabelValues(string(entities.ResultCriticalFailure))), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.narrationFallbacks), 0)

	count, err := testutil.GatherAndCount(reg, "interfacing_suggestions_parsed")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewMetrics_NilRegistererIsUsable(t *testing.T) {
	m := NewMetrics(nil)
	m.recordFallback()
	assert.InDelta(t, 1, testutil.ToFloat64(m.narrationFallbacks), 0)
}
