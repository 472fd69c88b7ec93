package convergence

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/icbo-research/schedplot/pkg/utils"
)

// Point is the cross-seed aggregate at one iteration.
type Point struct {
	Iteration int
	Mean      float64
	Std       float64
}

// Profile groups the table by iteration and aggregates across seeds.
// Std is the sample standard deviation; with a single seed it is 0.
// Seed files from one harness run share the same iteration grid, so
// every point aggregates the same number of seeds.
func (t *Table) Profile() []Point {
	byIter := make(map[int][]float64)
	for _, r := range t.Rows {
		byIter[r.Iteration] = append(byIter[r.Iteration], r.BestFitness)
	}

	points := make([]Point, 0, len(byIter))
	for iter, vals := range byIter {
		p := Point{Iteration: iter, Mean: stat.Mean(vals, nil)}
		if len(vals) >= 2 {
			p.Std = stat.StdDev(vals, nil)
		}
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Iteration < points[j].Iteration })
	return points
}

// Summary holds the per-algorithm row of the convergence report.
type Summary struct {
	Algorithm string
	// Initial and Final are the first and last iteration's mean fitness.
	Initial float64
	Final   float64
	// Improvement is the total reduction relative to Initial, in percent.
	Improvement float64
	// Speed is the share of the total improvement already achieved at
	// the midpoint iteration, in percent. 0 when the curve is flat.
	Speed float64
}

// Summarize derives the report metrics from an aggregated profile.
func Summarize(algorithm string, profile []Point) (Summary, error) {
	if len(profile) == 0 {
		return Summary{}, fmt.Errorf("%s: empty profile", algorithm)
	}

	initial := profile[0].Mean
	final := profile[len(profile)-1].Mean
	s := Summary{
		Algorithm:   algorithm,
		Initial:     initial,
		Final:       final,
		Improvement: utils.Percent(initial-final, initial),
	}

	half := profile[len(profile)/2].Mean
	s.Speed = utils.Percent(initial-half, initial-final)
	return s, nil
}
