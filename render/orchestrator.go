package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neuralfield/terminal"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	mode      terminal.ColorMode
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
}

// NewRenderOrchestrator creates an orchestrator for the given screen and dimensions
func NewRenderOrchestrator(screen tcell.Screen, mode terminal.ColorMode, width, height int) *RenderOrchestrator {
	return &RenderOrchestrator{
		screen:    screen,
		mode:      mode,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
// Returns a function removing the renderer again
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) func() {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry

	return func() { o.unregister(entry.index) }
}

func (o *RenderOrchestrator) unregister(index int) {
	for i, e := range o.renderers {
		if e.index == index {
			o.renderers = append(o.renderers[:i], o.renderers[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered renderers
func (o *RenderOrchestrator) Len() int {
	return len(o.renderers)
}

// Buffer exposes the compositor, mainly for tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	if o.screen != nil {
		o.screen.Sync()
	}
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
// Caller holds whatever lock guards the scene
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	o.buffer.Clear(ctx.Background())

	for _, entry := range o.renderers {
		// Skip if renderer implements VisibilityToggle and is not visible
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen, o.mode)
}

// Release drops the compositor buffer and detaches from the screen
func (o *RenderOrchestrator) Release() error {
	if o == nil {
		return nil
	}
	o.buffer.Resize(0, 0)
	o.renderers = nil
	o.screen = nil
	return nil
}
