// Package status holds the live counters the host publishes while mounted
package status

import (
	"fmt"
	"sync/atomic"
)

// Metric names written by the host
const (
	Mounts        = "host.mounts"
	Frames        = "host.frames"
	ReleaseErrors = "host.release_errors"
	FrameMillis   = "host.frame_ms"
	Points        = "scene.points"
	Segments      = "scene.segments"
	Solids        = "scene.solids"
)

// Registry groups integer counters and float gauges
// Writers cache the pointers returned by Get and update them without locking
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.Counters.Len() + r.Gauges.Len()
}

// Lines formats every metric as "name value", counters first
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.Len())
	r.Counters.Range(func(name string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", name, v.Load()))
	})
	r.Gauges.Range(func(name string, g *Gauge) {
		lines = append(lines, fmt.Sprintf("%s %.2f", name, g.Get()))
	})
	return lines
}
