package render

import (
	"time"

	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/scene"
	"github.com/lixenwraith/neuralfield/vmath"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Time state
	FrameTime time.Time
	Elapsed   float32 // seconds since the loop started

	// Theme
	Dark bool

	// Screen dimensions (terminal size)
	Width  int
	Height int

	// Scene being drawn, read-only for renderers
	Scene *scene.Scene

	// Blend composites backdrop glyphs; zero selects BlendAlphaFg
	Blend BlendMode
}

// GlyphBlend returns the blend mode for backdrop glyphs
func (rc RenderContext) GlyphBlend() BlendMode {
	if rc.Blend == 0 {
		return BlendAlphaFg
	}
	return rc.Blend
}

// Background returns the theme background color
func (rc RenderContext) Background() RGB {
	return visual.Background(rc.Dark)
}

// ProjectToCell maps a world point to fractional cell coordinates
// ok is false when the point is outside the camera depth range
func (rc RenderContext) ProjectToCell(p vmath.Vec3) (x, y, depth float32, ok bool) {
	if rc.Scene == nil || rc.Scene.Camera == nil {
		return 0, 0, 0, false
	}
	ndcX, ndcY, depth, ok := rc.Scene.Camera.Project(p)
	if !ok {
		return 0, 0, depth, false
	}
	x, y = scene.ToCell(ndcX, ndcY, rc.Width, rc.Height)
	return x, y, depth, true
}
