package renderer

import (
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/terminal"
	"github.com/lixenwraith/neuralfield/vmath"
)

// drawSegment rasterizes a world-space segment with slope glyphs
// fg is alpha blended over each cell's background at the given opacity
// Segments with an endpoint outside the camera depth range are skipped
func drawSegment(ctx render.RenderContext, buf *render.RenderBuffer, a, b vmath.Vec3, fg render.RGB, opacity float64) bool {
	ax, ay, _, okA := ctx.ProjectToCell(a)
	bx, by, _, okB := ctx.ProjectToCell(b)
	if !okA || !okB {
		return false
	}

	maxX := float32(ctx.Width) - 0.001
	maxY := float32(ctx.Height) - 0.001
	ax, ay, bx, by, ok := vmath.ClipSegment(ax, ay, bx, by, 0, 0, maxX, maxY)
	if !ok {
		return false
	}

	t := vmath.NewLineTraverser(int(ax), int(ay), int(bx), int(by))
	glyph := visual.LineGlyphs[t.Slope()]
	for t.Next() {
		x, y := t.Pos()
		buf.Set(x, y, glyph, fg, render.RGBBlack, ctx.GlyphBlend(), opacity, terminal.AttrNone)
	}
	return true
}
