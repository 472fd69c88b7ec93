package convergence

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTrace(t *testing.T, dir, algorithm, scale string, seed int, fitness []float64) {
	t.Helper()
	name := fmt.Sprintf("convergence_%s_%s_seed%d.csv", algorithm, scale, seed)
	content := "Iteration,BestFitness\n"
	for i, f := range fitness {
		content += fmt.Sprintf("%d,%.2f\n", i, f)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoader_Load(t *testing.T) {
	t.Run("concatenates all seed files", func(t *testing.T) {
		dir := t.TempDir()
		writeTrace(t, dir, "CBO", "M100", 42, []float64{100, 90, 85})
		writeTrace(t, dir, "CBO", "M100", 123, []float64{110, 95, 88})
		writeTrace(t, dir, "CBO", "M100", 7, []float64{105, 92, 86})

		table, err := NewLoader(dir).Load("CBO", "M100")
		require.NoError(t, err)
		assert.Equal(t, "CBO", table.Algorithm)
		assert.Equal(t, "M100", table.Scale)
		assert.Len(t, table.Rows, 9)
		assert.Equal(t, []int{7, 42, 123}, table.Seeds)
	})

	t.Run("rows carry the seed from the file name", func(t *testing.T) {
		dir := t.TempDir()
		writeTrace(t, dir, "GWO", "M50", 42, []float64{100, 90})

		table, err := NewLoader(dir).Load("GWO", "M50")
		require.NoError(t, err)
		for _, r := range table.Rows {
			assert.Equal(t, 42, r.Seed)
		}
	})

	t.Run("no files wraps ErrNoData", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewLoader(dir).Load("PSO", "M100")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("other algorithms do not leak in", func(t *testing.T) {
		dir := t.TempDir()
		writeTrace(t, dir, "CBO", "M100", 1, []float64{100})
		writeTrace(t, dir, "WOA", "M100", 1, []float64{200})

		table, err := NewLoader(dir).Load("WOA", "M100")
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, 200.0, table.Rows[0].BestFitness)
	})

	t.Run("scale is part of the match", func(t *testing.T) {
		dir := t.TempDir()
		writeTrace(t, dir, "CBO", "M100", 1, []float64{100})

		_, err := NewLoader(dir).Load("CBO", "M200")
		assert.ErrorIs(t, err, ErrNoData)
	})

	t.Run("missing columns error", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "convergence_CBO_M100_seed1.csv")
		require.NoError(t, os.WriteFile(path, []byte("Step,Value\n1,2\n"), 0644))

		_, err := NewLoader(dir).Load("CBO", "M100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing Iteration/BestFitness")
	})
}

func TestSeedFromName(t *testing.T) {
	seed, err := seedFromName("/data/convergence_ICBO-Enhanced_M100_seed12345.csv")
	require.NoError(t, err)
	assert.Equal(t, 12345, seed)

	_, err = seedFromName("/data/convergence_CBO_M100.csv")
	assert.Error(t, err)
}
