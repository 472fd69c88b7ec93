package sensitivity

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/icbo-research/schedplot/internal/render"
)

// The reference configuration the paper's main experiments ran with.
// The heatmap marks its cell; the report ranks it.
const (
	RefK      = 3
	RefLambda = 0.4
)

// Labels carries the localizable text of one heatmap.
type Labels struct {
	Title string
	X     string
	Y     string
}

// MetricLabels returns the English title/axis set for a metric heatmap.
func MetricLabels(m Metric) Labels {
	titles := map[Metric]string{
		MetricMean: "Parameter Sensitivity: Mean Makespan (Lower is Better)",
		MetricStd:  "Parameter Sensitivity: Std Makespan (Lower is Better)",
		MetricCV:   "Parameter Sensitivity: Coefficient of Variation (Lower is Better)",
	}
	return Labels{
		Title: titles[m],
		X:     "k (Dynamic Weight Decay Exponent)",
		Y:     "λ (Bernoulli Chaotic Parameter)",
	}
}

// LocalizedLabels returns the label set of the standalone
// mean-makespan heatmap in the requested language.
func LocalizedLabels(lang string) Labels {
	if lang == "zh" {
		return Labels{
			Title: "ICBO-Enhanced 参数敏感性分析（k × λ）",
			X:     "k (动态权重衰减指数)",
			Y:     "λ (Bernoulli混沌参数)",
		}
	}
	return Labels{
		Title: "ICBO-Enhanced Parameter Sensitivity Analysis (k × λ)",
		X:     "k (Dynamic Weight Decay Exponent)",
		Y:     "λ (Bernoulli Chaotic Parameter)",
	}
}

// Heatmap renders the pivoted grid as an annotated heatmap with a
// green-to-red scale (low is good) and, when the cell exists, a dashed
// red box plus star over the reference configuration.
func Heatmap(g *Grid, labels Labels, outPath string) error {
	p := plot.New()
	p.Title.Text = labels.Title
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)

	pal, err := render.RdYlGnReversed(11)
	if err != nil {
		return err
	}
	hm := plotter.NewHeatMap(g, pal)
	hm.Min, hm.Max = g.MinMax()
	p.Add(hm)

	p.X.Tick.Marker = kTicks(g.Ks)
	p.Y.Tick.Marker = lambdaTicks(g.Lambdas)

	if err := annotateCells(p, g); err != nil {
		return err
	}
	if err := markReference(p, g); err != nil {
		return err
	}

	return render.SavePNG(p, 10*vg.Inch, 8*vg.Inch, outPath)
}

func kTicks(ks []int) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(ks))
	for i, k := range ks {
		ticks[i] = plot.Tick{Value: float64(k), Label: fmt.Sprintf("%d", k)}
	}
	return plot.ConstantTicks(ticks)
}

func lambdaTicks(lambdas []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(lambdas))
	for i, l := range lambdas {
		ticks[i] = plot.Tick{Value: l, Label: fmt.Sprintf("%.1f", l)}
	}
	return plot.ConstantTicks(ticks)
}

// annotateCells prints each cell's value at its center.
func annotateCells(p *plot.Plot, g *Grid) error {
	var xys []plotter.XY
	var vals []string
	cols, rows := g.Dims()
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			v := g.Z(c, r)
			if math.IsNaN(v) {
				continue
			}
			xys = append(xys, plotter.XY{X: g.X(c), Y: g.Y(r)})
			vals = append(vals, fmt.Sprintf("%.2f", v))
		}
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: vals})
	if err != nil {
		return fmt.Errorf("cell labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
		labels.TextStyle[i].Font.Size = vg.Points(9)
	}
	p.Add(labels)
	return nil
}

// markReference overlays the reference cell. A sweep that never ran
// (k=3, λ=0.4) gets no marker, matching the upstream behavior of
// skipping rather than failing.
func markReference(p *plot.Plot, g *Grid) error {
	c, r, ok := g.Cell(RefK, RefLambda)
	if !ok {
		return nil
	}

	halfW, halfH := cellHalfSize(g)
	x, y := g.X(c), g.Y(r)
	box, err := plotter.NewLine(plotter.XYs{
		{X: x - halfW, Y: y - halfH},
		{X: x + halfW, Y: y - halfH},
		{X: x + halfW, Y: y + halfH},
		{X: x - halfW, Y: y + halfH},
		{X: x - halfW, Y: y - halfH},
	})
	if err != nil {
		return fmt.Errorf("reference box: %w", err)
	}
	box.LineStyle.Color = render.Red
	box.LineStyle.Width = vg.Points(2)
	box.LineStyle.Dashes = render.Dashes("dash")
	p.Add(box)

	star, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: x, Y: y + halfH*0.45}},
		Labels: []string{"★"},
	})
	if err != nil {
		return fmt.Errorf("reference star: %w", err)
	}
	star.TextStyle[0].Color = render.Red
	star.TextStyle[0].Font.Size = vg.Points(16)
	star.TextStyle[0].XAlign = text.XCenter
	star.TextStyle[0].YAlign = text.YCenter
	p.Add(star)
	return nil
}

// cellHalfSize derives cell extents from the grid spacing, falling back
// to sane sizes for degenerate single-row/column sweeps.
func cellHalfSize(g *Grid) (halfW, halfH float64) {
	halfW, halfH = 0.5, 0.05
	if len(g.Ks) > 1 {
		halfW = float64(g.Ks[1]-g.Ks[0]) / 2
	}
	if len(g.Lambdas) > 1 {
		halfH = (g.Lambdas[1] - g.Lambdas[0]) / 2
	}
	return halfW, halfH
}
