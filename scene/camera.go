package scene

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/vmath"
)

// worldUp is the camera's reference up direction
var worldUp = vmath.V3(0, 1, 0)

// Camera is a perspective camera aimed at a target
type Camera struct {
	Position vmath.Vec3
	FOV      float32 // vertical, radians
	Aspect   float32 // width/height in square units
	Near     float32
	Far      float32

	// View basis, refreshed by LookAt
	right, up, forward vmath.Vec3
	focal              float32
}

// NewCamera creates the default backdrop camera for a viewport of cols x rows cells
func NewCamera(cols, rows int) *Camera {
	c := &Camera{
		Position: vmath.V3(0, 0, parameter.CameraStartZ),
		FOV:      parameter.CameraFOVDegrees * math32.Pi / 180,
		Near:     parameter.CameraNear,
		Far:      parameter.CameraFar,
	}
	c.SetViewport(cols, rows)
	c.LookAt(vmath.Vec3{})
	return c
}

// SetViewport recomputes the aspect ratio for a cell grid
// Cells are CellAspect times taller than wide
func (c *Camera) SetViewport(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		c.Aspect = 1
	} else {
		c.Aspect = float32(cols) / (float32(rows) * parameter.CellAspect)
	}
	c.focal = 1 / math32.Tan(c.FOV/2)
}

// LookAt re-aims the camera at target, keeping worldUp as the reference
func (c *Camera) LookAt(target vmath.Vec3) {
	c.forward = vmath.V3Normalize(vmath.V3Sub(target, c.Position))
	c.right = vmath.V3Normalize(vmath.V3Cross(c.forward, worldUp))
	if c.right == (vmath.Vec3{}) {
		c.right = vmath.V3(1, 0, 0)
	}
	c.up = vmath.V3Cross(c.right, c.forward)
}

// Project maps a world point to normalized device coordinates
// ok is false when the point is outside the near/far range
func (c *Camera) Project(p vmath.Vec3) (ndcX, ndcY, depth float32, ok bool) {
	view := vmath.V3Sub(p, c.Position)
	depth = vmath.V3Dot(view, c.forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	ndcX = vmath.V3Dot(view, c.right) * c.focal / (c.Aspect * depth)
	ndcY = vmath.V3Dot(view, c.up) * c.focal / depth
	return ndcX, ndcY, depth, true
}

// ToCell converts NDC to fractional cell coordinates on a cols x rows grid
func ToCell(ndcX, ndcY float32, cols, rows int) (x, y float32) {
	x = (ndcX + 1) / 2 * float32(cols)
	y = (1 - ndcY) / 2 * float32(rows)
	return x, y
}
