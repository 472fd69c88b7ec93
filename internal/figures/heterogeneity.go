package figures

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"

	"github.com/icbo-research/schedplot/internal/render"
)

// HeterogeneityImpact draws grouped bars of each algorithm's average
// rank under the fixed and heterogeneous parameter regimes, with delta
// labels for the ranks that moved and a key-findings note.
//
// Bars are positioned on a numeric X axis (one slot per bar, a gap slot
// between the groups) so value and delta labels share the bars' data
// coordinates regardless of canvas size.
func HeterogeneityImpact(outPath string) error {
	p := plot.New()
	p.Title.Text = "Impact of Parameter Heterogeneity on Algorithm Ranking"
	p.Title.TextStyle.Font.Size = vg.Points(15)
	p.Y.Label.Text = "Average Rank (Lower is Better)"
	p.Y.Label.TextStyle.Font.Size = vg.Points(13)
	p.Add(plotter.NewGrid())
	p.Y.Min = 0
	p.Y.Max = 8
	p.Legend.Top = true

	n := len(impactAlgorithms)
	regimes := [][]float64{impactFixedRanks, impactHeteroRanks}
	for group, ranks := range regimes {
		for i, alg := range impactAlgorithms {
			bar, err := plotter.NewBarChart(plotter.Values{ranks[i]}, vg.Points(18))
			if err != nil {
				return fmt.Errorf("bar %s: %w", alg, err)
			}
			bar.XMin = barX(group, i, n)
			bar.Color = colorFor(alg)
			bar.LineStyle.Color = color.Black
			bar.LineStyle.Width = vg.Points(0.5)
			p.Add(bar)
			if group == 0 {
				p.Legend.Add(alg, bar)
			}
		}
	}

	p.X.Min = -1
	p.X.Max = barX(1, n-1, n) + 1
	p.X.Tick.Marker = plot.ConstantTicks([]plot.Tick{
		{Value: groupCenter(0, n), Label: "Fixed Parameters\n(5 Scales)"},
		{Value: groupCenter(1, n), Label: "Heterogeneous Parameters\n(7 Scales)"},
	})

	if err := deltaLabels(p, n); err != nil {
		return err
	}
	if err := keyFindings(p); err != nil {
		return err
	}

	return render.SavePNG(p, 12*vg.Inch, 7*vg.Inch, outPath)
}

// barX is the data-coordinate X of algorithm idx's bar in regime group.
// Each bar owns one unit slot; one empty slot separates the groups.
func barX(group, idx, n int) float64 {
	return float64(group*(n+1) + idx)
}

func groupCenter(group, n int) float64 {
	return barX(group, 0, n) + float64(n-1)/2
}

// deltaLabels annotates the heterogeneous bars whose rank moved by more
// than 0.1 from the fixed regime, green for improvements and red for
// degradations.
func deltaLabels(p *plot.Plot, n int) error {
	green := color.RGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 255}

	for i := range impactAlgorithms {
		change := impactHeteroRanks[i] - impactFixedRanks[i]
		if math.Abs(change) <= 0.1 {
			continue
		}
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: barX(1, i, n), Y: impactHeteroRanks[i] + 0.15}},
			Labels: []string{fmt.Sprintf("%+.2f", change)},
		})
		if err != nil {
			return fmt.Errorf("delta label %s: %w", impactAlgorithms[i], err)
		}
		label.TextStyle[0].XAlign = text.XCenter
		label.TextStyle[0].Font.Size = vg.Points(9)
		if change < 0 {
			label.TextStyle[0].Color = green
		} else {
			label.TextStyle[0].Color = render.Red
		}
		p.Add(label)
	}
	return nil
}

func keyFindings(p *plot.Plot) error {
	note, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{{X: -0.5, Y: 7.6}},
		Labels: []string{
			"PSO: 2.20 -> 1.71 (Improved)\nICBO-E: 1.60 -> 2.71 (Degraded)\nICBO: 4.40 -> 2.86 (Improved)",
		},
	})
	if err != nil {
		return fmt.Errorf("key findings: %w", err)
	}
	note.TextStyle[0].Font.Size = vg.Points(11)
	note.TextStyle[0].YAlign = text.YTop
	p.Add(note)
	return nil
}
