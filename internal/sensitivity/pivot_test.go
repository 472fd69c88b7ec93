package sensitivity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullSweep() *Table {
	t := &Table{Path: "sweep.csv"}
	ks := []int{1, 2, 3}
	lambdas := []float64{0.2, 0.4}
	for i, k := range ks {
		for j, l := range lambdas {
			t.Rows = append(t.Rows, Row{
				K: k, Lambda: l,
				MeanMakespan: 900 + float64(i*10+j),
				StdMakespan:  10 + float64(j),
				CV:           1 + float64(i),
			})
		}
	}
	return t
}

func TestTable_Pivot(t *testing.T) {
	t.Run("one column per k and one row per lambda", func(t *testing.T) {
		g, err := fullSweep().Pivot(MetricMean)
		require.NoError(t, err)

		cols, rows := g.Dims()
		assert.Equal(t, 3, cols)
		assert.Equal(t, 2, rows)
		assert.Equal(t, []int{1, 2, 3}, g.Ks)
		assert.Equal(t, []float64{0.2, 0.4}, g.Lambdas)
	})

	t.Run("cells map k to X and lambda to Y", func(t *testing.T) {
		g, err := fullSweep().Pivot(MetricMean)
		require.NoError(t, err)

		assert.Equal(t, 2.0, g.X(1))
		assert.Equal(t, 0.4, g.Y(1))
		// (k=2, λ=0.4) was filled with 900 + 1*10 + 1.
		assert.InDelta(t, 911.0, g.Z(1, 1), 1e-9)
	})

	t.Run("metric selects the pivoted statistic", func(t *testing.T) {
		g, err := fullSweep().Pivot(MetricCV)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, g.Z(2, 0), 1e-9)
	})

	t.Run("duplicate configuration errors", func(t *testing.T) {
		table := &Table{Path: "dup.csv", Rows: []Row{
			{K: 3, Lambda: 0.4, MeanMakespan: 880},
			{K: 3, Lambda: 0.4, MeanMakespan: 890},
		}}
		_, err := table.Pivot(MetricMean)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate configuration")
	})

	t.Run("absent pairs become NaN", func(t *testing.T) {
		table := &Table{Rows: []Row{
			{K: 1, Lambda: 0.2, MeanMakespan: 900},
			{K: 2, Lambda: 0.4, MeanMakespan: 910},
		}}
		g, err := table.Pivot(MetricMean)
		require.NoError(t, err)
		assert.True(t, math.IsNaN(g.Z(1, 0)))
		assert.False(t, math.IsNaN(g.Z(0, 0)))
	})
}

func TestGrid_Cell(t *testing.T) {
	g, err := fullSweep().Pivot(MetricMean)
	require.NoError(t, err)

	c, r, ok := g.Cell(2, 0.4)
	require.True(t, ok)
	assert.Equal(t, 1, c)
	assert.Equal(t, 1, r)

	_, _, ok = g.Cell(4, 0.4)
	assert.False(t, ok)

	_, _, ok = g.Cell(2, 0.41)
	assert.False(t, ok)
}

func TestGrid_MinMax(t *testing.T) {
	table := &Table{Rows: []Row{
		{K: 1, Lambda: 0.2, MeanMakespan: 900},
		{K: 2, Lambda: 0.4, MeanMakespan: 950},
	}}
	g, err := table.Pivot(MetricMean)
	require.NoError(t, err)

	min, max := g.MinMax()
	assert.Equal(t, 900.0, min)
	assert.Equal(t, 950.0, max)
}
