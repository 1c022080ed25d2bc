package renderer

import (
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/vmath"
)

// SolidsRenderer draws the floating wireframe solids
type SolidsRenderer struct {
	// Reused across frames to avoid allocation
	world []vmath.Vec3
}

// NewSolidsRenderer creates a new solids renderer
func NewSolidsRenderer() *SolidsRenderer {
	return &SolidsRenderer{}
}

// Render transforms each mesh once and draws its edges
func (r *SolidsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Scene == nil {
		return
	}

	for _, solid := range ctx.Scene.Solids {
		if solid.Mesh == nil || solid.Material == nil || solid.Material.Released() {
			continue
		}

		m := solid.Transform.Matrix()
		r.world = r.world[:0]
		for _, v := range solid.Mesh.Vertices {
			r.world = append(r.world, solid.Transform.ApplyWith(m, v))
		}

		fg := visual.ToRGB(solid.Material.Color)
		opacity := float64(solid.Material.Opacity)
		for _, e := range solid.Mesh.Edges {
			drawSegment(ctx, buf, r.world[e[0]], r.world[e[1]], fg, opacity)
		}
	}
}
