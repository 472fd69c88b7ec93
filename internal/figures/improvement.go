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

// ImprovementRate draws the log-x line chart of the ICBO variants'
// improvement over CBO across task scales, with per-point percentage
// labels and the M=2000 breakthrough callout.
func ImprovementRate(outPath string) error {
	p := plot.New()
	p.Title.Text = "ICBO Series Improvement Rate vs CBO (Heterogeneous Parameters)"
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.X.Label.Text = "Task Scale (M)"
	p.Y.Label.Text = "Improvement Rate over CBO (%)"
	p.X.Label.TextStyle.Font.Size = vg.Points(13)
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	p.X.Scale = plot.LogScale{}
	ticks := make([]plot.Tick, len(taskScales))
	for i, s := range taskScales {
		ticks[i] = plot.Tick{Value: s, Label: fmt.Sprintf("%.0f", s)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)

	icboImp := improvementOver(cboMakespans, icboMakespans)
	icboEImp := improvementOver(cboMakespans, icboEnhanced)

	if err := improvementSeries(p, "ICBO vs CBO", icboImp, colorFor("ICBO"), +1.2); err != nil {
		return err
	}
	if err := improvementSeries(p, "ICBO-Enhanced vs CBO", icboEImp, colorFor("ICBO-Enhanced"), -1.2); err != nil {
		return err
	}

	if err := zeroBaseline(p); err != nil {
		return err
	}
	if err := breakthroughCallout(p, icboImp[len(icboImp)-1]); err != nil {
		return err
	}

	return render.SavePNG(p, 12*vg.Inch, 7*vg.Inch, outPath)
}

func improvementSeries(p *plot.Plot, name string, imp []float64, clr color.RGBA, labelOffset float64) error {
	xys := make(plotter.XYs, len(imp))
	for i := range imp {
		xys[i] = plotter.XY{X: taskScales[i], Y: imp[i]}
	}
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("series %s: %w", name, err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = clr
	points.GlyphStyle.Color = clr
	points.GlyphStyle.Radius = vg.Points(4)
	p.Add(line, points)
	p.Legend.Add(name, line, points)

	labelXYs := make([]plotter.XY, len(imp))
	labelStrs := make([]string, len(imp))
	for i := range imp {
		labelXYs[i] = plotter.XY{X: taskScales[i], Y: imp[i] + labelOffset}
		labelStrs[i] = fmt.Sprintf("%.1f%%", imp[i])
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: labelXYs, Labels: labelStrs})
	if err != nil {
		return fmt.Errorf("series %s labels: %w", name, err)
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Color = clr
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].Font.Size = vg.Points(9)
		if labelOffset < 0 {
			labels.TextStyle[i].YAlign = text.YTop
		}
	}
	p.Add(labels)
	return nil
}

func zeroBaseline(p *plot.Plot) error {
	base, err := plotter.NewLine(plotter.XYs{
		{X: taskScales[0], Y: 0},
		{X: taskScales[len(taskScales)-1], Y: 0},
	})
	if err != nil {
		return fmt.Errorf("zero baseline: %w", err)
	}
	base.LineStyle.Color = color.Black
	base.LineStyle.Width = vg.Points(1)
	base.LineStyle.Dashes = render.Dashes("dash")
	p.Add(base)
	return nil
}

// breakthroughCallout stars the M=2000 point of the ICBO series and
// names it.
func breakthroughCallout(p *plot.Plot, finalImp float64) error {
	last := taskScales[len(taskScales)-1]

	star, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: last, Y: finalImp}},
		Labels: []string{"★"},
	})
	if err != nil {
		return fmt.Errorf("breakthrough star: %w", err)
	}
	star.TextStyle[0].Color = render.Gold
	star.TextStyle[0].Font.Size = vg.Points(20)
	star.TextStyle[0].XAlign = text.XCenter
	star.TextStyle[0].YAlign = text.YCenter
	p.Add(star)

	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 1100, Y: finalImp + 6}},
		Labels: []string{"ICBO Breakthrough\nat M=2000"},
	})
	if err != nil {
		return fmt.Errorf("breakthrough note: %w", err)
	}
	note.TextStyle[0].Color = render.Red
	note.TextStyle[0].Font.Size = vg.Points(12)
	note.TextStyle[0].XAlign = text.XCenter
	p.Add(note)
	return nil
}
