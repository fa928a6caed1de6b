package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/spirals/internal/palette"
	"github.com/san-kum/spirals/internal/spiral"
	"github.com/san-kum/spirals/internal/viz"
)

// pointsPerInch relates marker areas (in square points) to the figure size.
const pointsPerInch = 72.0

type SVGOptions struct {
	Width, Height int
	// Inches is the nominal figure size used to turn marker areas into pixels.
	Inches     float64
	Alpha      float64
	Background string // empty for transparent
	Title      bool
	Camera     *viz.Camera
}

func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:  800,
		Height: 800,
		Inches: 8,
		Alpha:  0.8,
		Title:  true,
	}
}

// SpiralToSVG draws a single spiral. Scatter results become one circle per
// point, plot results a single path.
func SpiralToSVG(res spiral.Result, p palette.Palette, opts SVGOptions) string {
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultSVGOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}
	if opts.Inches <= 0 {
		opts.Inches = DefaultSVGOptions().Inches
	}
	w, h := float64(opts.Width), float64(opts.Height)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
`, opts.Width, opts.Height, opts.Width, opts.Height))
	if opts.Background != "" {
		sb.WriteString(fmt.Sprintf(`<rect width="100%%" height="100%%" fill="%s"/>
`, opts.Background))
	}

	placed := viz.Layout(res, w, h, opts.Camera)

	if res.Mode == spiral.ModePlot {
		writePath(&sb, placed, p.Hex(0))
	} else {
		pxPerPoint := w / (opts.Inches * pointsPerInch)
		sb.WriteString(fmt.Sprintf(`<g fill-opacity="%.2f">
`, opts.Alpha))
		for _, pl := range placed {
			if !pl.Visible {
				continue
			}
			attr := res.Attributes[pl.Index]
			r := math.Sqrt(math.Max(attr.Size, 0)) / 2 * pxPerPoint
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.2f" fill="%s"/>
`, pl.X, pl.Y, r, p.Hex(attr.ColorIndex)))
		}
		sb.WriteString("</g>\n")
	}

	if opts.Title {
		writeTitle(&sb, res, w, h)
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func writePath(sb *strings.Builder, placed []viz.Placed, stroke string) {
	if len(placed) < 2 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke))
	for i, pl := range placed {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", pl.X, pl.Y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", pl.X, pl.Y))
		}
	}
	sb.WriteString(`"/>
`)
}

// The source value sits in the bottom right corner for scatter plots and the
// top right corner otherwise.
func writeTitle(sb *strings.Builder, res spiral.Result, w, h float64) {
	y := h * 0.08
	fill := "#000000"
	if res.Mode == spiral.ModeScatter {
		y = h * 0.97
		fill = "#686868"
	}
	sb.WriteString(fmt.Sprintf(`<text x="%.0f" y="%.0f" text-anchor="end" font-family="sans-serif" font-size="%.0f" fill="%s">%d</text>
`, w*0.97, y, h*0.045, fill, res.SourceValue))
}
