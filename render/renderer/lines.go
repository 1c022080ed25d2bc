package renderer

import (
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
)

// LinesRenderer draws the proximity graph
type LinesRenderer struct{}

// NewLinesRenderer creates a new lines renderer
func NewLinesRenderer() *LinesRenderer {
	return &LinesRenderer{}
}

// Render draws every connection segment through the lines transform
func (r *LinesRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	s := ctx.Scene
	if s == nil || s.LinesMaterial == nil || s.LinesMaterial.Released() {
		return
	}

	fg := visual.ToRGB(s.LinesMaterial.Color)
	opacity := float64(s.LinesMaterial.Opacity)
	m := s.LinesTransform.Matrix()

	for _, seg := range s.Segments {
		a := s.LinesTransform.ApplyWith(m, seg.A)
		b := s.LinesTransform.ApplyWith(m, seg.B)
		drawSegment(ctx, buf, a, b, fg, opacity)
	}
}
