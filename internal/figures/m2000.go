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

// M2000Bars draws the ultra-large-scale bar chart, outlining the
// winning ICBO bar in gold and annotating its improvement over PSO.
func M2000Bars(outPath string) error {
	p := plot.New()
	p.Title.Text = "M=2000 Ultra-Large Scale Performance (Heterogeneous Parameters)"
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.X.Label.Text = "Algorithm"
	p.Y.Label.Text = "Makespan (Lower is Better)"
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.Add(plotter.NewGrid())
	p.Y.Min = 0
	p.Y.Max = 6200

	winner := argmin(m2000Makespans)
	for i, alg := range m2000Algorithms {
		bar, err := plotter.NewBarChart(plotter.Values{m2000Makespans[i]}, vg.Points(34))
		if err != nil {
			return fmt.Errorf("bar %s: %w", alg, err)
		}
		bar.XMin = float64(i)
		bar.Color = colorFor(alg)
		bar.LineStyle.Color = color.Black
		bar.LineStyle.Width = vg.Points(1)
		if i == winner {
			bar.LineStyle.Color = render.Gold
			bar.LineStyle.Width = vg.Points(2.5)
		}
		p.Add(bar)
	}
	p.NominalX(m2000Algorithms...)

	if err := barValueLabels(p, m2000Makespans); err != nil {
		return err
	}
	if err := improvementArrow(p); err != nil {
		return err
	}

	return render.SavePNG(p, 12*vg.Inch, 7*vg.Inch, outPath)
}

func barValueLabels(p *plot.Plot, vals []float64) error {
	xys := make([]plotter.XY, len(vals))
	strs := make([]string, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v + 100}
		strs[i] = fmt.Sprintf("%.2f", v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: strs})
	if err != nil {
		return fmt.Errorf("value labels: %w", err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].Font.Size = vg.Points(10)
	}
	p.Add(labels)
	return nil
}

// improvementArrow draws the PSO-to-ICBO comparison at the PSO bar:
// a vertical red span between the two makespans plus the improvement
// callout.
func improvementArrow(p *plot.Plot) error {
	const psoIdx = 5
	pso := m2000Makespans[psoIdx]
	icbo := m2000Makespans[argmin(m2000Makespans)]
	improvement := (pso - icbo) / pso * 100

	span, err := plotter.NewLine(plotter.XYs{
		{X: psoIdx, Y: icbo},
		{X: psoIdx, Y: pso},
	})
	if err != nil {
		return fmt.Errorf("improvement span: %w", err)
	}
	span.LineStyle.Color = render.Red
	span.LineStyle.Width = vg.Points(2)
	p.Add(span)

	callout, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: psoIdx + 0.4, Y: (icbo + pso) / 2}},
		Labels: []string{fmt.Sprintf("ICBO improves\n%.1f%%", improvement)},
	})
	if err != nil {
		return fmt.Errorf("improvement callout: %w", err)
	}
	callout.TextStyle[0].Color = render.Red
	callout.TextStyle[0].Font.Size = vg.Points(12)
	callout.TextStyle[0].YAlign = text.YCenter
	p.Add(callout)
	return nil
}
