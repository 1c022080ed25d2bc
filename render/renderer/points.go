package renderer

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/terminal"
)

// PointsRenderer draws the point cloud, nearest point winning each cell
type PointsRenderer struct {
	// Per-cell depth of the nearest point drawn this frame
	// Reused across frames to avoid allocation
	depth []float32
}

// NewPointsRenderer creates a new points renderer
func NewPointsRenderer() *PointsRenderer {
	return &PointsRenderer{}
}

func (r *PointsRenderer) resetDepth(size int) {
	if cap(r.depth) < size {
		r.depth = make([]float32, size)
	}
	r.depth = r.depth[:size]
	for i := range r.depth {
		r.depth[i] = math32.Inf(1)
	}
}

// Render projects every point through the points transform
func (r *PointsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Scene
	if s == nil || s.Cloud == nil || s.Cloud.Count == 0 {
		return
	}
	w, h := ctx.Width, ctx.Height
	if w <= 0 || h <= 0 {
		return
	}
	r.resetDepth(w * h)

	cloud := s.Cloud
	opacity := float64(cloud.Opacity)
	m := s.PointsTransform.Matrix()

	for i := 0; i < cloud.Count; i++ {
		p := s.PointsTransform.ApplyWith(m, cloud.Position(i))
		fx, fy, depth, ok := ctx.ProjectToCell(p)
		if !ok || fx < 0 || fy < 0 {
			continue
		}
		x, y := int(fx), int(fy)
		if x >= w || y >= h {
			continue
		}

		idx := y*w + x
		if depth >= r.depth[idx] {
			continue
		}
		r.depth[idx] = depth

		weight := cloud.Sizes[i] * parameter.PointBaseSize * s.PointsTransform.Scale / depth
		fg := visual.FloatsToRGB(cloud.Colors[i*3], cloud.Colors[i*3+1], cloud.Colors[i*3+2])

		// Fg blends over the background rather than over a farther point sharing the cell
		buf.SetFgOnly(x, y, 0, buf.Background(), terminal.AttrNone)
		buf.Set(x, y, visual.PointGlyph(weight), fg, render.RGBBlack, ctx.GlyphBlend(), opacity, terminal.AttrNone)
	}
}
