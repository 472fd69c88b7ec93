package sensitivity

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/icbo-research/schedplot/internal/markdown"
)

// Reference lookup tolerates the float representation of λ in the
// source CSV: k must match exactly, λ anywhere in [0.39, 0.41].
const (
	refLambdaLo = 0.39
	refLambdaHi = 0.41
)

// Analysis is everything the sensitivity report narrates.
type Analysis struct {
	// Best is the sweep's minimum-mean-makespan configuration.
	Best Row
	// Top holds up to five configurations, best first.
	Top []Row
	// Total is the number of configurations in the sweep.
	Total int
	// Reference describes the (k=3, λ≈0.4) configuration, nil when the
	// sweep does not include it.
	Reference *ReferenceConfig

	KMarginals      []KMarginal
	LambdaMarginals []LambdaMarginal
}

// ReferenceConfig is the ranked reference configuration.
type ReferenceConfig struct {
	Row
	Rank int
}

// KMarginal is the mean of MeanMakespan across all λ for one k.
type KMarginal struct {
	K    int
	Mean float64
}

// LambdaMarginal is the mean of MeanMakespan across all k for one λ.
type LambdaMarginal struct {
	Lambda float64
	Mean   float64
}

// Analyze computes the report statistics from a loaded sweep.
func Analyze(t *Table) (*Analysis, error) {
	if len(t.Rows) == 0 {
		return nil, fmt.Errorf("empty sensitivity table")
	}

	ranked := make([]Row, len(t.Rows))
	copy(ranked, t.Rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MeanMakespan < ranked[j].MeanMakespan
	})

	a := &Analysis{
		Best:  ranked[0],
		Total: len(ranked),
	}
	a.Top = ranked[:min(5, len(ranked))]

	for rank, r := range ranked {
		if r.K == RefK && r.Lambda >= refLambdaLo && r.Lambda <= refLambdaHi {
			a.Reference = &ReferenceConfig{Row: r, Rank: rank + 1}
			break
		}
	}

	for _, k := range t.Ks() {
		var vals []float64
		for _, r := range t.Rows {
			if r.K == k {
				vals = append(vals, r.MeanMakespan)
			}
		}
		a.KMarginals = append(a.KMarginals, KMarginal{K: k, Mean: stat.Mean(vals, nil)})
	}
	for _, lambda := range t.Lambdas() {
		var vals []float64
		for _, r := range t.Rows {
			if r.Lambda == lambda {
				vals = append(vals, r.MeanMakespan)
			}
		}
		a.LambdaMarginals = append(a.LambdaMarginals, LambdaMarginal{Lambda: lambda, Mean: stat.Mean(vals, nil)})
	}

	return a, nil
}

// WriteReport emits sensitivity_analysis_report.md.
func WriteReport(path string, t *Table, a *Analysis, meta markdown.Meta) error {
	doc := markdown.NewDoc()
	doc.Heading(1, "Parameter Sensitivity Analysis Report")
	meta.Write(doc)

	doc.Heading(2, "1. Parameter Configuration")
	doc.Bullet("k (dynamic weight decay exponent): %v", t.Ks())
	doc.Bullet("λ (Bernoulli chaotic parameter): %v", t.Lambdas())
	doc.Bullet("Total configurations: %d", a.Total)
	doc.Blank()

	doc.Heading(2, "2. Best Configurations (by Mean Makespan)")
	rows := make([][]string, 0, len(a.Top))
	for i, r := range a.Top {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.K),
			fmt.Sprintf("%.1f", r.Lambda),
			fmt.Sprintf("%.2f", r.MeanMakespan),
			fmt.Sprintf("%.2f", r.StdMakespan),
			fmt.Sprintf("%.2f%%", r.CV),
		})
	}
	doc.Table([]string{"Rank", "k", "λ", "Mean Makespan", "Std", "CV%"}, rows)
	doc.Blank()

	if a.Reference != nil {
		doc.Heading(2, fmt.Sprintf("3. Reference Configuration (k=%d, λ=%.1f)", RefK, RefLambda))
		doc.Bullet("Rank: %d/%d", a.Reference.Rank, a.Total)
		doc.Bullet("Mean Makespan: %.2f", a.Reference.MeanMakespan)
		doc.Bullet("Std Makespan: %.2f", a.Reference.StdMakespan)
		doc.Bullet("CV: %.2f%%", a.Reference.CV)
		doc.Bullet("Min: %.2f", a.Reference.MinMakespan)
		doc.Bullet("Max: %.2f", a.Reference.MaxMakespan)
		doc.Blank()
	}

	doc.Heading(2, "4. Parameter Effects")
	doc.Heading(3, "4.1 Effect of k")
	for _, m := range a.KMarginals {
		doc.Bullet("k=%d: mean makespan %.2f", m.K, m.Mean)
	}
	doc.Blank()
	doc.Heading(3, "4.2 Effect of λ")
	for _, m := range a.LambdaMarginals {
		doc.Bullet("λ=%.1f: mean makespan %.2f", m.Lambda, m.Mean)
	}

	return doc.WriteFile(path)
}
