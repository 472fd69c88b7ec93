// Package figures renders the four publication figures of the ICBO
// paper. The numbers are the campaign's final results, embedded as
// literals: these figures are typeset artifacts, not live views, and a
// rerun of the experiments means re-editing this table.
package figures

import "image/color"

// paperColors is the colorblind-friendly palette used across the
// figures. It intentionally differs from the convergence-plot palette.
var paperColors = map[string]color.RGBA{
	"ICBO-Enhanced": {R: 0x2E, G: 0x86, B: 0xAB, A: 255},
	"ICBO-E":        {R: 0x2E, G: 0x86, B: 0xAB, A: 255},
	"ICBO":          {R: 0xA2, G: 0x3B, B: 0x72, A: 255},
	"CBO":           {R: 0xF1, G: 0x8F, B: 0x01, A: 255},
	"PSO":           {R: 0xC7, G: 0x3E, B: 0x1D, A: 255},
	"GWO":           {R: 0x6A, G: 0x99, B: 0x4E, A: 255},
	"WOA":           {R: 0xBC, G: 0x4B, B: 0x51, A: 255},
	"Random":        {R: 0x99, G: 0x99, B: 0x99, A: 255},
}

func colorFor(algorithm string) color.RGBA {
	if c, ok := paperColors[algorithm]; ok {
		return c
	}
	return color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 255}
}

// Average ranks across the two parameter regimes.
var (
	rankingAlgorithms = []string{"Random", "CBO", "WOA", "GWO", "ICBO", "PSO", "ICBO-E"}
	fixedRanks        = []float64{7.00, 4.60, 4.20, 4.00, 4.40, 2.20, 1.60}
	heteroRanks       = []float64{7.00, 4.86, 4.57, 4.29, 2.86, 1.71, 2.71}
)

// M=2000 heterogeneous-parameter makespans.
var (
	m2000Algorithms = []string{"Random", "CBO", "WOA", "GWO", "ICBO-E", "PSO", "ICBO"}
	m2000Makespans  = []float64{5800, 3302.74, 3450, 3600, 3307.50, 3496.92, 2800.12}
)

// Heterogeneous-parameter makespans per task scale, for the
// improvement-rate figure.
var (
	taskScales    = []float64{50, 100, 200, 300, 500, 1000, 2000}
	cboMakespans  = []float64{691.28, 971.98, 1178.67, 1499.52, 2006.63, 2726.39, 3302.74}
	icboMakespans = []float64{690.79, 878.88, 1142.32, 1374.25, 1663.77, 2523.84, 2800.12}
	icboEnhanced  = []float64{596.44, 803.44, 974.33, 1184.50, 1848.58, 1972.39, 3307.50}
)

// Regime comparison, ordered for the grouped-bar figure.
var (
	impactAlgorithms  = []string{"PSO", "ICBO-E", "GWO", "WOA", "ICBO", "CBO", "Random"}
	impactFixedRanks  = []float64{2.20, 1.60, 4.00, 4.20, 4.40, 4.60, 7.00}
	impactHeteroRanks = []float64{1.71, 2.71, 4.29, 4.57, 2.86, 4.86, 7.00}
)

// improvementOver returns the percentage improvements of each value in
// over[] relative to base[], element-wise.
func improvementOver(base, over []float64) []float64 {
	out := make([]float64, len(base))
	for i := range base {
		out[i] = (base[i] - over[i]) / base[i] * 100
	}
	return out
}
