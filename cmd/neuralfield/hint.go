package main

import (
	"sync/atomic"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/terminal"
)

// HintRenderer draws the page's one-line hint centered near the bottom edge
type HintRenderer struct {
	text    string
	visible atomic.Bool
}

// NewHintRenderer creates a hint renderer
func NewHintRenderer(text string, visible bool) *HintRenderer {
	r := &HintRenderer{text: text}
	r.visible.Store(visible)
	return r
}

// IsVisible implements render.VisibilityToggle
func (r *HintRenderer) IsVisible() bool {
	return r.visible.Load()
}

// SetVisible shows or hides the hint
func (r *HintRenderer) SetVisible(v bool) {
	r.visible.Store(v)
}

// Render draws the hint text
func (r *HintRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	if ctx.Width < parameter.HintMinWidth || ctx.Height <= parameter.HintBottomMargin {
		return
	}
	width := runewidth.StringWidth(r.text)
	x := (ctx.Width - width) / 2
	y := ctx.Height - 1 - parameter.HintBottomMargin
	buf.SetString(max(x, 0), y, r.text, visual.Hint(ctx.Dark), terminal.AttrDim)
}
