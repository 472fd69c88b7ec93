// Package render holds the shared drawing plumbing: publication-quality
// PNG encoding, panel tiling and the palette/style tables used across
// the figures.
package render

import (
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// DPI is the resolution of every emitted PNG. The figures go straight
// into a paper, so this is fixed rather than configurable.
const DPI = 300

// SavePNG renders a single plot to path at publication resolution,
// creating the parent directory when needed. Existing files are
// overwritten.
func SavePNG(p *plot.Plot, w, h vg.Length, path string) error {
	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	p.Draw(draw.New(c))
	return writePNG(c, path)
}

// SavePanels renders the plots side by side on one canvas, axis-aligned.
// w and h are the dimensions of the whole canvas, not of one panel.
func SavePanels(plots []*plot.Plot, w, h vg.Length, path string) error {
	if len(plots) == 0 {
		return fmt.Errorf("no panels to render")
	}

	c := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(DPI))
	dc := draw.New(c)

	tiles := draw.Tiles{
		Rows: 1,
		Cols: len(plots),
		PadX: vg.Points(12),
	}
	canvases := plot.Align([][]*plot.Plot{plots}, tiles, dc)
	for i, p := range plots {
		p.Draw(canvases[0][i])
	}

	return writePNG(c, path)
}

func writePNG(c *vgimg.Canvas, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
