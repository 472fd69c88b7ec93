package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/vg"
)

// Gold outlines the winning bar or cell in the paper figures.
var Gold = color.RGBA{R: 255, G: 215, B: 0, A: 255}

// Red marks reference configurations and callouts.
var Red = color.RGBA{R: 220, G: 30, B: 30, A: 255}

// ParseHexColor converts a #rrggbb string to an opaque color.
// Invalid input falls back to black; the spec validator rejects bad
// colors before they reach drawing code.
func ParseHexColor(s string) color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{A: 255}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced, for translucent seed
// curves and confidence bands.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// Dashes maps a plotspec line-style name to a vg dash pattern.
func Dashes(style string) []vg.Length {
	switch style {
	case "dash":
		return []vg.Length{vg.Points(6), vg.Points(4)}
	case "dashdot":
		return []vg.Length{vg.Points(6), vg.Points(3), vg.Points(1), vg.Points(3)}
	case "dot":
		return []vg.Length{vg.Points(1), vg.Points(3)}
	default:
		return nil
	}
}

// RdYlGnReversed returns the red-yellow-green brewer palette flipped so
// that low values map to green. The heatmaps plot makespan, where lower
// is better.
func RdYlGnReversed(colors int) (palette.Palette, error) {
	p, err := brewer.GetPalette(brewer.TypeDiverging, "RdYlGn", colors)
	if err != nil {
		return nil, fmt.Errorf("brewer RdYlGn: %w", err)
	}
	return Reversed(p), nil
}

// Reversed wraps a palette with its color order flipped.
func Reversed(p palette.Palette) palette.Palette {
	return reversed{p}
}

type reversed struct {
	p palette.Palette
}

func (r reversed) Colors() []color.Color {
	src := r.p.Colors()
	out := make([]color.Color, len(src))
	for i, c := range src {
		out[len(src)-1-i] = c
	}
	return out
}
