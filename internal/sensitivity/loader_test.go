package sensitivity

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sweepCSV = `k,lambda,MeanMakespan,StdMakespan,MinMakespan,MaxMakespan,CV
1,0.2,950.12,20.5,910.0,990.0,2.16
3,0.4,880.40,15.2,850.0,920.0,1.73
5,0.6,905.77,18.9,870.0,940.0,2.09
`

func TestLoad(t *testing.T) {
	t.Run("parses rows by header name", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sensitivity_results_20250101.csv")
		require.NoError(t, os.WriteFile(path, []byte(sweepCSV), 0644))

		table, err := Load(path)
		require.NoError(t, err)
		require.Len(t, table.Rows, 3)
		assert.Equal(t, 3, table.Rows[1].K)
		assert.InDelta(t, 0.4, table.Rows[1].Lambda, 1e-9)
		assert.InDelta(t, 880.40, table.Rows[1].MeanMakespan, 1e-9)
		assert.InDelta(t, 1.73, table.Rows[1].CV, 1e-9)
	})

	t.Run("reordered columns still load", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sweep.csv")
		csv := "MeanMakespan,k,lambda,StdMakespan,CV,MinMakespan,MaxMakespan\n880.4,3,0.4,15.2,1.73,850,920\n"
		require.NoError(t, os.WriteFile(path, []byte(csv), 0644))

		table, err := Load(path)
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, 3, table.Rows[0].K)
		assert.InDelta(t, 880.4, table.Rows[0].MeanMakespan, 1e-9)
	})

	t.Run("missing column errors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sweep.csv")
		require.NoError(t, os.WriteFile(path, []byte("k,lambda\n1,0.2\n"), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing column")
	})

	t.Run("header only errors", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "sweep.csv")
		header := "k,lambda,MeanMakespan,StdMakespan,MinMakespan,MaxMakespan,CV\n"
		require.NoError(t, os.WriteFile(path, []byte(header), 0644))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no data rows")
	})
}

func TestDiscover(t *testing.T) {
	t.Run("picks the newest by mod time", func(t *testing.T) {
		dir := t.TempDir()
		old := filepath.Join(dir, "sensitivity_results_20240101_120000.csv")
		newer := filepath.Join(dir, "sensitivity_results_20250101_120000.csv")
		require.NoError(t, os.WriteFile(old, []byte(sweepCSV), 0644))
		require.NoError(t, os.WriteFile(newer, []byte(sweepCSV), 0644))

		base := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(old, base, base))
		require.NoError(t, os.Chtimes(newer, base.Add(time.Minute), base.Add(time.Minute)))

		got, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, newer, got)
	})

	t.Run("no matches errors with a hint", func(t *testing.T) {
		dir := t.TempDir()
		_, err := Discover(dir)
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "sensitivity harness")
	})

	t.Run("ignores unrelated files", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "convergence_CBO_M100_seed1.csv"), []byte("x"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "sensitivity_results_a.csv"), []byte(sweepCSV), 0644))

		got, err := Discover(dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "sensitivity_results_a.csv"), got)
	})
}

func TestTable_Axes(t *testing.T) {
	table := &Table{Rows: []Row{
		{K: 5, Lambda: 0.6},
		{K: 1, Lambda: 0.2},
		{K: 3, Lambda: 0.4},
		{K: 3, Lambda: 0.2},
	}}
	assert.Equal(t, []int{1, 3, 5}, table.Ks())
	assert.Equal(t, []float64{0.2, 0.4, 0.6}, table.Lambdas())
}
