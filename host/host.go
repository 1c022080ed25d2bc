// Package host mounts the backdrop on a terminal screen and owns its lifecycle
package host

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/neuralfield/engine"
	"github.com/lixenwraith/neuralfield/events"
	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/render"
	"github.com/lixenwraith/neuralfield/render/renderer"
	"github.com/lixenwraith/neuralfield/scene"
	"github.com/lixenwraith/neuralfield/status"
	"github.com/lixenwraith/neuralfield/terminal"
)

// Options configures a Host; zero values select defaults
type Options struct {
	Clock         engine.Clock
	FrameInterval time.Duration
	Rand          *rand.Rand
	Drift         scene.DriftMode
	Particles     int
	MaxSegments   int
	ColorMode     terminal.ColorMode
	Blend         render.BlendMode
	Stats         *status.Registry
}

type releaser struct {
	name    string
	release func() error
}

type overlay struct {
	renderer render.SystemRenderer
	priority render.RenderPriority
}

// mount holds everything created by one Mount and freed by the matching Unmount
type mount struct {
	screen       tcell.Screen
	scene        *scene.Scene
	orchestrator *render.RenderOrchestrator
	loop         *engine.FrameLoop
	unsubscribe  []func()
	releasers    []releaser
	width        int
	height       int
}

// Host owns the backdrop scene for the lifetime of a mount
// The frame loop, SetTheme and Resize serialize on one mutex; pointer moves are
// stored atomically and read once per frame
// Mount and Unmount additionally hold lifecycle across loop shutdown, so a new mount
// never starts while the previous loop is still running
type Host struct {
	opts Options
	bus  *events.Bus

	lifecycle sync.Mutex

	mu       sync.Mutex
	m        *mount
	dark     bool
	animator scene.Animator
	overlays []overlay

	pointer atomic.Uint64 // float32 bits, X high, Y low

	stats       *status.Registry
	frames      *atomic.Int64
	frameMillis *status.Gauge
}

// New creates an unmounted host listening on bus
func New(bus *events.Bus, dark bool, opts Options) *Host {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameUpdateInterval
	}
	if bus == nil {
		bus = events.NewBus()
	}
	if opts.Stats == nil {
		opts.Stats = status.NewRegistry()
	}
	return &Host{
		opts:        opts,
		bus:         bus,
		dark:        dark,
		animator:    scene.Animator{Drift: opts.Drift},
		stats:       opts.Stats,
		frames:      opts.Stats.Counters.Get(status.Frames),
		frameMillis: opts.Stats.Gauges.Get(status.FrameMillis),
	}
}

// Stats returns the registry the host writes its counters to
func (h *Host) Stats() *status.Registry {
	return h.stats
}

// AddRenderer registers a page layer drawn with the backdrop on every mount
func (h *Host) AddRenderer(r render.SystemRenderer, priority render.RenderPriority) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.overlays = append(h.overlays, overlay{r, priority})
	if h.m != nil {
		h.m.orchestrator.Register(r, priority)
	}
}

// Mounted reports whether the host currently owns a scene
func (h *Host) Mounted() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.m != nil
}

// Dark returns the current theme flag
func (h *Host) Dark() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.dark
}

// Mount builds the scene on screen and starts the frame loop
// A nil screen is ignored, as is a second Mount while mounted
func (h *Host) Mount(screen tcell.Screen) {
	if screen == nil {
		return
	}

	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.m != nil {
		return
	}

	w, ht := screen.Size()
	sc := scene.New(scene.Options{
		Particles:   h.opts.Particles,
		MaxSegments: h.opts.MaxSegments,
		Dark:        h.dark,
		Rand:        h.opts.Rand,
	}, w, ht)

	orch := render.NewRenderOrchestrator(screen, h.opts.ColorMode, w, ht)
	orch.Register(renderer.NewLinesRenderer(), render.PriorityLines)
	orch.Register(renderer.NewSolidsRenderer(), render.PrioritySolids)
	orch.Register(renderer.NewPointsRenderer(), render.PriorityPoints)
	for _, o := range h.overlays {
		orch.Register(o.renderer, o.priority)
	}

	m := &mount{
		screen:       screen,
		scene:        sc,
		orchestrator: orch,
		width:        w,
		height:       ht,
	}
	m.releasers = releasersFor(m)
	h.pointer.Store(0)

	m.unsubscribe = []func(){
		h.bus.Subscribe(events.EventPointerMove, h.onPointerMove),
		h.bus.Subscribe(events.EventResize, h.onResize),
	}

	m.loop = engine.NewFrameLoop(h.opts.Clock, h.opts.FrameInterval)
	h.m = m
	m.loop.Start(func(elapsed time.Duration) {
		h.frameFor(m, float32(elapsed.Seconds()))
	})

	h.stats.Counters.Get(status.Mounts).Add(1)
	h.stats.Counters.Get(status.Points).Store(int64(sc.Cloud.Count))
	h.stats.Counters.Get(status.Segments).Store(int64(len(sc.Segments)))
	h.stats.Counters.Get(status.Solids).Store(int64(len(sc.Solids)))

	log.Printf("[host] mounted %dx%d: %d points, %d segments, %d solids",
		w, ht, sc.Cloud.Count, len(sc.Segments), len(sc.Solids))
}

// releasersFor lists every resource of a mount in release order
func releasersFor(m *mount) []releaser {
	sc := m.scene
	rs := []releaser{
		{"point cloud", sc.Cloud.Release},
		{"line material", sc.LinesMaterial.Release},
	}
	for _, s := range sc.Solids {
		rs = append(rs,
			releaser{s.Kind.String() + " geometry", s.Mesh.Release},
			releaser{s.Kind.String() + " material", s.Material.Release},
		)
	}
	rs = append(rs, releaser{"render buffer", m.orchestrator.Release})
	return rs
}

// Unmount stops the loop, removes listeners and frees every resource
// Safe to call any number of times and on a host that never mounted
func (h *Host) Unmount() {
	h.lifecycle.Lock()
	defer h.lifecycle.Unlock()

	h.mu.Lock()
	m := h.m
	h.m = nil
	h.mu.Unlock()
	if m == nil {
		return
	}

	for _, unsub := range m.unsubscribe {
		unsub()
	}
	// Outside mu: a frame waiting on it must be able to finish
	m.loop.Stop()

	if err := releaseAll(m.releasers); err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			h.stats.Counters.Get(status.ReleaseErrors).Add(int64(len(joined.Unwrap())))
		}
		log.Printf("[host] unmount: %v", err)
	}
	m.scene.Segments = nil
	log.Printf("[host] unmounted after %d frames", m.loop.Frames())
}

// releaseAll runs every releaser, recovering panics, and joins the failures
func releaseAll(rs []releaser) error {
	var errs []error
	for _, r := range rs {
		if err := safeRelease(r); err != nil {
			errs = append(errs, fmt.Errorf("release %s: %w", r.name, err))
		}
	}
	return errors.Join(errs...)
}

func safeRelease(r releaser) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return r.release()
}

// SetTheme re-tints the point cloud; lines and solids keep their mount-time colors
// The flag is remembered for the next mount when unmounted
func (h *Host) SetTheme(dark bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dark = dark
	if h.m != nil {
		h.m.scene.SetTheme(dark)
	}
}

// Resize updates the camera aspect and the render buffer
func (h *Host) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.m == nil {
		return
	}
	h.m.width, h.m.height = width, height
	h.m.scene.Camera.SetViewport(width, height)
	h.m.orchestrator.Resize(width, height)
}

func (h *Host) onPointerMove(ev events.Event) {
	if p, ok := ev.Payload.(*events.PointerMovePayload); ok {
		h.storePointer(scene.Pointer{X: p.X, Y: p.Y})
	}
}

func (h *Host) onResize(ev events.Event) {
	if p, ok := ev.Payload.(*events.ResizePayload); ok {
		h.Resize(p.Width, p.Height)
	}
}

func (h *Host) storePointer(p scene.Pointer) {
	h.pointer.Store(uint64(math.Float32bits(p.X))<<32 | uint64(math.Float32bits(p.Y)))
}

// loadPointer returns the latest pointer snapshot
func (h *Host) loadPointer() scene.Pointer {
	v := h.pointer.Load()
	return scene.Pointer{
		X: math.Float32frombits(uint32(v >> 32)),
		Y: math.Float32frombits(uint32(v)),
	}
}

// frame advances and draws one frame of the current mount at elapsed seconds
func (h *Host) frame(elapsed float32) {
	h.mu.Lock()
	m := h.m
	h.mu.Unlock()
	h.frameFor(m, elapsed)
}

// frameFor steps m only while it is still the current mount
// A loop outliving its mount never touches a newer scene
func (h *Host) frameFor(m *mount, elapsed float32) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m == nil || h.m != m {
		return
	}

	start := h.opts.Clock.Now()
	h.animator.Step(m.scene, elapsed, h.loadPointer())
	m.orchestrator.RenderFrame(render.RenderContext{
		FrameTime: start,
		Elapsed:   elapsed,
		Dark:      h.dark,
		Width:     m.width,
		Height:    m.height,
		Scene:     m.scene,
		Blend:     h.opts.Blend,
	})
	h.frames.Add(1)
	h.frameMillis.Set(float64(h.opts.Clock.Now().Sub(start).Microseconds()) / 1000)
}
