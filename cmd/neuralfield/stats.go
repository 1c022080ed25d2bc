package main

import (
	"sync/atomic"

	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/status"
	"github.com/lixenwraith/neuralfield/terminal"
)

// StatsRenderer lists the host's live counters in the top-left corner
type StatsRenderer struct {
	stats   *status.Registry
	visible atomic.Bool
}

// NewStatsRenderer creates a stats overlay over reg
func NewStatsRenderer(reg *status.Registry, visible bool) *StatsRenderer {
	r := &StatsRenderer{stats: reg}
	r.visible.Store(visible)
	return r
}

// IsVisible implements render.VisibilityToggle
func (r *StatsRenderer) IsVisible() bool {
	return r.visible.Load()
}

// Toggle flips visibility
func (r *StatsRenderer) Toggle() {
	for {
		v := r.visible.Load()
		if r.visible.CompareAndSwap(v, !v) {
			return
		}
	}
}

// Render draws one metric per row
func (r *StatsRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	fg := visual.Hint(ctx.Dark)
	for y, line := range r.stats.Lines() {
		if y >= ctx.Height {
			return
		}
		buf.SetString(1, y, line, fg, terminal.AttrNone)
	}
}
