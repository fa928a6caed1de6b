package viz

import "math"

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Camera projects 3D points onto the screen. Points are normalised into a
// unit cube by the caller, so Position.Z is a distance in those units.
type Camera struct {
	Position   Vec3
	Near       float64
	RotX, RotY float64
	Zoom       float64
}

// NewCamera looks at the origin from a raised angle, matching the default
// view of a 3d scatter.
func NewCamera() *Camera {
	return &Camera{Position: Vec3{0, 0, 4}, Near: 0.1, RotX: -1.0, RotY: 0.5, Zoom: 1.0}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p Vec3) Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	return p
}

// Project converts a point to screen coordinates on a sw x sh surface.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p Vec3, sw, sh float64) (float64, float64, float64, bool) {
	rot := c.RotatePoint(p).Scale(c.Zoom)
	dist := c.Position.Z
	if rot.Z >= dist-c.Near {
		return 0, 0, 0, false
	}
	scale := dist / (dist - rot.Z)
	pScale := math.Min(sw, sh) / 3.0
	sx := rot.X*scale*pScale + sw/2
	sy := -rot.Y*scale*pScale + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}
