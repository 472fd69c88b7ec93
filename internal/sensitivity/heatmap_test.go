package sensitivity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricLabels(t *testing.T) {
	assert.Contains(t, MetricLabels(MetricMean).Title, "Mean Makespan")
	assert.Contains(t, MetricLabels(MetricStd).Title, "Std Makespan")
	assert.Contains(t, MetricLabels(MetricCV).Title, "Coefficient of Variation")
}

func TestLocalizedLabels(t *testing.T) {
	assert.Contains(t, LocalizedLabels("en").Title, "Parameter Sensitivity")
	assert.Contains(t, LocalizedLabels("zh").Title, "参数敏感性")
	// Unknown languages fall back to English.
	assert.Equal(t, LocalizedLabels("en"), LocalizedLabels("de"))
}

func TestHeatmap(t *testing.T) {
	g, err := fullSweep().Pivot(MetricMean)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "heatmap.png")
	require.NoError(t, Heatmap(g, MetricLabels(MetricMean), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTrends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trends.png")
	require.NoError(t, Trends(fullSweep(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
