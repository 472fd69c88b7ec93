package sensitivity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Grid is the sweep pivoted into a dense λ×k matrix of one metric.
// Rows are λ values ascending, columns are k values ascending. It
// implements plotter.GridXYZ, with k on X and λ on Y.
type Grid struct {
	Ks      []int
	Lambdas []float64
	Metric  Metric

	data *mat.Dense
}

// Pivot builds the dense matrix for metric m. Every (k, λ) pair must
// appear at most once; a duplicate is an explicit error rather than a
// silent pick. Pairs absent from the sweep become NaN cells.
func (t *Table) Pivot(m Metric) (*Grid, error) {
	g := &Grid{Ks: t.Ks(), Lambdas: t.Lambdas(), Metric: m}

	kIdx := make(map[int]int, len(g.Ks))
	for i, k := range g.Ks {
		kIdx[k] = i
	}
	lIdx := make(map[float64]int, len(g.Lambdas))
	for i, l := range g.Lambdas {
		lIdx[l] = i
	}

	g.data = mat.NewDense(len(g.Lambdas), len(g.Ks), nil)
	seen := mat.NewDense(len(g.Lambdas), len(g.Ks), nil)
	for i := 0; i < len(g.Lambdas); i++ {
		for j := 0; j < len(g.Ks); j++ {
			g.data.Set(i, j, math.NaN())
		}
	}

	for _, r := range t.Rows {
		i, j := lIdx[r.Lambda], kIdx[r.K]
		if seen.At(i, j) != 0 {
			return nil, fmt.Errorf("duplicate configuration k=%d lambda=%g in %s", r.K, r.Lambda, t.Path)
		}
		seen.Set(i, j, 1)
		g.data.Set(i, j, r.Value(m))
	}
	return g, nil
}

// Dims implements plotter.GridXYZ.
func (g *Grid) Dims() (c, r int) {
	return len(g.Ks), len(g.Lambdas)
}

// Z implements plotter.GridXYZ.
func (g *Grid) Z(c, r int) float64 {
	return g.data.At(r, c)
}

// X implements plotter.GridXYZ: column c's k value.
func (g *Grid) X(c int) float64 {
	return float64(g.Ks[c])
}

// Y implements plotter.GridXYZ: row r's λ value.
func (g *Grid) Y(r int) float64 {
	return g.Lambdas[r]
}

// Cell locates the column and row of an exact (k, λ) configuration.
// λ is compared within a float-representation epsilon only; tolerant
// matching belongs to the report's reference lookup, not the heatmap
// marker.
func (g *Grid) Cell(k int, lambda float64) (c, r int, ok bool) {
	c, r = -1, -1
	for i, kv := range g.Ks {
		if kv == k {
			c = i
			break
		}
	}
	for i, lv := range g.Lambdas {
		if math.Abs(lv-lambda) < 1e-9 {
			r = i
			break
		}
	}
	return c, r, c >= 0 && r >= 0
}

// MinMax scans the grid ignoring NaN cells.
func (g *Grid) MinMax() (min, max float64) {
	min, max = math.Inf(1), math.Inf(-1)
	cols, rows := g.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := g.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			min = math.Min(min, v)
			max = math.Max(max, v)
		}
	}
	return min, max
}
