package figures

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImprovementOver(t *testing.T) {
	got := improvementOver([]float64{100, 200}, []float64{80, 220})
	require.Len(t, got, 2)
	assert.InDelta(t, 20.0, got[0], 1e-9)
	assert.InDelta(t, -10.0, got[1], 1e-9)
}

func TestEmbeddedSeriesAligned(t *testing.T) {
	assert.Len(t, fixedRanks, len(rankingAlgorithms))
	assert.Len(t, heteroRanks, len(rankingAlgorithms))
	assert.Len(t, m2000Makespans, len(m2000Algorithms))
	assert.Len(t, cboMakespans, len(taskScales))
	assert.Len(t, icboMakespans, len(taskScales))
	assert.Len(t, icboEnhanced, len(taskScales))
	assert.Len(t, impactFixedRanks, len(impactAlgorithms))
	assert.Len(t, impactHeteroRanks, len(impactAlgorithms))
}

func TestArgmin(t *testing.T) {
	assert.Equal(t, 2, argmin([]float64{3, 2, 1, 4}))
	assert.Equal(t, 0, argmin([]float64{1}))
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, paperColors["ICBO"], colorFor("ICBO"))
	// ICBO-E is the short label some figures use for the same series.
	assert.Equal(t, colorFor("ICBO-Enhanced"), colorFor("ICBO-E"))
	assert.NotZero(t, colorFor("unknown").R)
}

func TestRenderFigures(t *testing.T) {
	dir := t.TempDir()

	for name, render := range map[string]func(string) error{
		"ranking.png":       RankingComparison,
		"m2000.png":         M2000Bars,
		"improvement.png":   ImprovementRate,
		"heterogeneity.png": HeterogeneityImpact,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, render(path))
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Positive(t, info.Size())
		})
	}
}
