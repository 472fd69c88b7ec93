package convergence

import (
	"fmt"
	"image/color"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/icbo-research/schedplot/internal/plotspec"
	"github.com/icbo-research/schedplot/internal/render"
)

// ComparisonEntry pairs one algorithm's visual identity with its
// aggregated convergence profile.
type ComparisonEntry struct {
	Style   plotspec.Algorithm
	Profile []Point
}

// PlotIndividual draws every seed run of one algorithm as a translucent
// curve, with the cross-seed mean in bold and a ±1 std band behind it.
func PlotIndividual(t *Table, style plotspec.Algorithm, outPath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Convergence Curve - %s", t.Algorithm, t.Scale)
	p.Title.TextStyle.Font.Size = vg.Points(14)
	decorateAxes(p)

	clr := render.ParseHexColor(style.Color)

	for _, seed := range t.Seeds {
		line, err := plotter.NewLine(seedCurve(t, seed))
		if err != nil {
			return fmt.Errorf("seed %d curve: %w", seed, err)
		}
		line.LineStyle.Width = vg.Points(0.75)
		line.LineStyle.Color = render.WithAlpha(clr, 75)
		p.Add(line)
	}

	profile := t.Profile()

	band, err := stdBand(profile, render.WithAlpha(clr, 50))
	if err != nil {
		return err
	}
	p.Add(band)
	p.Legend.Add("±1 Std", band)

	mean, err := meanLine(profile, clr, nil)
	if err != nil {
		return err
	}
	p.Add(mean)
	p.Legend.Add(fmt.Sprintf("%s Mean", t.Algorithm), mean)

	return render.SavePNG(p, 10*vg.Inch, 6*vg.Inch, outPath)
}

// PlotComparison overlays the mean curve and ±1 std band of each
// algorithm on one chart. Entries are drawn in the given order, so the
// highlighted algorithm should come last.
func PlotComparison(entries []ComparisonEntry, scale, outPath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Algorithm Convergence Comparison - %s", scale)
	p.Title.TextStyle.Font.Size = vg.Points(16)
	decorateAxes(p)

	for _, e := range entries {
		clr := render.ParseHexColor(e.Style.Color)

		band, err := stdBand(e.Profile, render.WithAlpha(clr, 38))
		if err != nil {
			return fmt.Errorf("%s band: %w", e.Style.Name, err)
		}
		p.Add(band)

		mean, err := meanLine(e.Profile, clr, render.Dashes(e.Style.Line))
		if err != nil {
			return fmt.Errorf("%s mean: %w", e.Style.Name, err)
		}
		p.Add(mean)
		p.Legend.Add(e.Style.Name, mean)
	}

	return render.SavePNG(p, 12*vg.Inch, 7*vg.Inch, outPath)
}

func decorateAxes(p *plot.Plot) {
	p.X.Label.Text = "Iteration"
	p.Y.Label.Text = "Best Makespan"
	p.X.Label.TextStyle.Font.Size = vg.Points(12)
	p.Y.Label.TextStyle.Font.Size = vg.Points(12)
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)
	p.Legend.YOffs = -vg.Points(10)
}

func seedCurve(t *Table, seed int) plotter.XYs {
	var xys plotter.XYs
	for _, r := range t.Rows {
		if r.Seed == seed {
			xys = append(xys, plotter.XY{X: float64(r.Iteration), Y: r.BestFitness})
		}
	}
	sort.Slice(xys, func(i, j int) bool { return xys[i].X < xys[j].X })
	return xys
}

func meanLine(profile []Point, clr color.RGBA, dashes []vg.Length) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(profile))
	for i, pt := range profile {
		xys[i] = plotter.XY{X: float64(pt.Iteration), Y: pt.Mean}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("mean line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = clr
	line.LineStyle.Dashes = dashes
	return line, nil
}

// stdBand builds the shaded mean±std region: the lower edge walked
// forward, the upper edge walked back.
func stdBand(profile []Point, fill color.NRGBA) (*plotter.Polygon, error) {
	xys := make(plotter.XYs, 0, 2*len(profile))
	for _, pt := range profile {
		xys = append(xys, plotter.XY{X: float64(pt.Iteration), Y: pt.Mean - pt.Std})
	}
	for i := len(profile) - 1; i >= 0; i-- {
		pt := profile[i]
		xys = append(xys, plotter.XY{X: float64(pt.Iteration), Y: pt.Mean + pt.Std})
	}

	poly, err := plotter.NewPolygon(xys)
	if err != nil {
		return nil, fmt.Errorf("std band: %w", err)
	}
	poly.Color = fill
	poly.LineStyle.Width = 0
	poly.LineStyle.Color = color.Transparent
	return poly, nil
}
