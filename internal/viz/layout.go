package viz

import (
	"math"
	"sort"

	"github.com/san-kum/spirals/internal/spiral"
)

// Placed is a spiral point mapped onto a drawing surface.
type Placed struct {
	Index   int
	X, Y    float64
	Depth   float64
	Visible bool
}

// Layout fits the points of res onto a w x h surface with a uniform scale and
// y pointing down. 3d results go through cam (NewCamera when nil) and come
// back sorted far to near for painter's-order drawing; 2d results keep
// generation order.
func Layout(res spiral.Result, w, h float64, cam *Camera) []Placed {
	if len(res.Points) == 0 || w <= 0 || h <= 0 {
		return nil
	}
	if res.Mode.Is3D() {
		if cam == nil {
			cam = NewCamera()
		}
		return layout3D(res, w, h, cam)
	}
	return layout2D(res, w, h)
}

func layout2D(res spiral.Result, w, h float64) []Placed {
	minX, maxX, minY, maxY := res.Bounds()
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	pad := 0.05
	scale := math.Min(w*(1-2*pad)/rangeX, h*(1-2*pad)/rangeY)
	offX := (w - rangeX*scale) / 2
	offY := (h - rangeY*scale) / 2

	out := make([]Placed, len(res.Points))
	for i, p := range res.Points {
		out[i] = Placed{
			Index:   i,
			X:       offX + (p.X-minX)*scale,
			Y:       h - (offY + (p.Y-minY)*scale),
			Visible: true,
		}
	}
	return out
}

func layout3D(res spiral.Result, w, h float64, cam *Camera) []Placed {
	extent := 0.0
	maxZ := 0.0
	for _, p := range res.Points {
		extent = math.Max(extent, math.Max(math.Abs(p.X), math.Abs(p.Y)))
		maxZ = math.Max(maxZ, p.Z)
	}
	if extent == 0 {
		extent = 1
	}
	if maxZ == 0 {
		maxZ = 1
	}

	out := make([]Placed, len(res.Points))
	for i, p := range res.Points {
		v := Vec3{X: p.X / extent, Y: p.Y / extent, Z: p.Z/maxZ - 0.5}
		// spiral height runs along the screen's vertical before rotation
		x, y, depth, ok := cam.Project(Vec3{X: v.X, Y: v.Z, Z: v.Y}, w, h)
		out[i] = Placed{Index: i, X: x, Y: y, Depth: depth, Visible: ok}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Depth < out[b].Depth })
	return out
}

// Draw plots res onto c. Plot-mode results are joined with lines; scatter
// results are drawn as dots. Each dot takes the colour slot of its point.
func Draw(c *Canvas, res spiral.Result, cam *Camera) {
	if c == nil {
		return
	}
	w, h := c.PixelSize()
	placed := Layout(res, float64(w), float64(h), cam)

	if res.Mode == spiral.ModePlot && len(placed) > 1 {
		for i := 1; i < len(placed); i++ {
			a, b := placed[i-1], placed[i]
			c.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), res.Attributes[b.Index].ColorIndex)
		}
		return
	}

	for _, p := range placed {
		if !p.Visible {
			continue
		}
		c.SetSlot(int(p.X), int(p.Y), res.Attributes[p.Index].ColorIndex)
	}
}
