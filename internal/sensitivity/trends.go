package sensitivity

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/icbo-research/schedplot/internal/render"
)

// Trends renders the two-panel parameter trend chart: mean makespan
// against k with one line per λ, and against λ with one line per k.
func Trends(t *Table, outPath string) error {
	left := trendPanel("Impact of k Parameter", "k (Dynamic Weight Decay Exponent)")
	for i, lambda := range t.Lambdas() {
		var xys plotter.XYs
		for _, k := range t.Ks() {
			if r, ok := t.find(k, lambda); ok {
				xys = append(xys, plotter.XY{X: float64(k), Y: r.MeanMakespan})
			}
		}
		if err := addTrendLine(left, xys, fmt.Sprintf("λ=%.1f", lambda), i); err != nil {
			return err
		}
	}

	right := trendPanel("Impact of λ Parameter", "λ (Bernoulli Chaotic Parameter)")
	for i, k := range t.Ks() {
		var xys plotter.XYs
		for _, lambda := range t.Lambdas() {
			if r, ok := t.find(k, lambda); ok {
				xys = append(xys, plotter.XY{X: lambda, Y: r.MeanMakespan})
			}
		}
		if err := addTrendLine(right, xys, fmt.Sprintf("k=%d", k), i); err != nil {
			return err
		}
	}

	return render.SavePanels([]*plot.Plot{left, right}, 16*vg.Inch, 6*vg.Inch, outPath)
}

func trendPanel(title, xLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Mean Makespan"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

func addTrendLine(p *plot.Plot, xys plotter.XYs, name string, i int) error {
	if len(xys) == 0 {
		return nil
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("trend line %s: %w", name, err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = plotutil.Color(i)
	points.GlyphStyle.Color = plotutil.Color(i)
	points.GlyphStyle.Shape = plotutil.Shape(i)
	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}

func (t *Table) find(k int, lambda float64) (Row, bool) {
	for _, r := range t.Rows {
		if r.K == k && r.Lambda == lambda {
			return r, true
		}
	}
	return Row{}, false
}
