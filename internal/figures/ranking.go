package figures

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/icbo-research/schedplot/internal/render"
)

// RankingComparison draws the two-panel horizontal bar chart of average
// algorithm ranks under fixed and heterogeneous parameters, outlining
// the top-ranked bar of each panel in gold.
func RankingComparison(outPath string) error {
	left, err := rankingPanel("Fixed Parameters (5 Scales)", fixedRanks)
	if err != nil {
		return fmt.Errorf("fixed panel: %w", err)
	}
	right, err := rankingPanel("Heterogeneous Parameters (7 Scales)", heteroRanks)
	if err != nil {
		return fmt.Errorf("heterogeneous panel: %w", err)
	}

	return render.SavePanels([]*plot.Plot{left, right}, 14*vg.Inch, 6*vg.Inch, outPath)
}

func rankingPanel(title string, ranks []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Average Rank (Lower is Better)"
	p.Add(plotter.NewGrid())

	best := argmin(ranks)
	for i, alg := range rankingAlgorithms {
		bar, err := plotter.NewBarChart(plotter.Values{ranks[i]}, vg.Points(22))
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", alg, err)
		}
		bar.Horizontal = true
		bar.XMin = float64(i)
		bar.Color = colorFor(alg)
		bar.LineStyle.Color = color.Black
		bar.LineStyle.Width = vg.Points(0.5)
		if i == best {
			bar.LineStyle.Color = render.Gold
			bar.LineStyle.Width = vg.Points(2.5)
		}
		p.Add(bar)
	}
	p.NominalY(rankingAlgorithms...)

	if err := rankLabels(p, ranks); err != nil {
		return nil, err
	}
	return p, nil
}

// rankLabels prints each rank value just past the end of its bar.
func rankLabels(p *plot.Plot, ranks []float64) error {
	xys := make([]plotter.XY, len(ranks))
	vals := make([]string, len(ranks))
	for i, r := range ranks {
		xys[i] = plotter.XY{X: r + 0.12, Y: float64(i)}
		vals[i] = fmt.Sprintf("%.2f", r)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: vals})
	if err != nil {
		return fmt.Errorf("rank labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	p.Add(labels)
	return nil
}

func argmin(vals []float64) int {
	best := 0
	for i, v := range vals {
		if v < vals[best] {
			best = i
		}
	}
	return best
}
