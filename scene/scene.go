package scene

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/vmath"
)

// Options controls scene construction
type Options struct {
	Particles   int
	MaxSegments int
	Dark        bool
	Rand        *rand.Rand
}

// Scene owns every backdrop object for one mount
type Scene struct {
	Cloud           *Cloud
	PointsTransform vmath.Transform

	Segments       []Segment
	LinesTransform vmath.Transform
	LinesMaterial  *Material

	Solids []*Solid
	Camera *Camera

	Dark bool
	rng  *rand.Rand
}

// New builds the full scene for a cols x rows viewport
func New(opts Options, cols, rows int) *Scene {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	particles := opts.Particles
	if particles <= 0 {
		particles = parameter.ParticleCount
	}
	maxSegments := opts.MaxSegments
	if maxSegments <= 0 {
		maxSegments = parameter.GraphMaxSegments
	}

	cloud := GenerateCloud(particles, opts.Dark, rng)
	s := &Scene{
		Cloud:           cloud,
		PointsTransform: vmath.NewTransform(vmath.Vec3{}),
		Segments:        BuildGraph(cloud.Positions, cloud.Count, maxSegments),
		LinesTransform:  vmath.NewTransform(vmath.Vec3{}),
		LinesMaterial:   NewMaterial(visual.PrimaryAccent(opts.Dark), parameter.LineOpacity),
		Solids:          CreateSolids(opts.Dark),
		Camera:          NewCamera(cols, rows),
		Dark:            opts.Dark,
		rng:             rng,
	}
	return s
}

// SetTheme re-tints the point cloud for a theme
// Line and solid materials keep the colors chosen at construction
func (s *Scene) SetTheme(dark bool) {
	s.Dark = dark
	if s.Cloud != nil {
		s.Cloud.Recolor(dark, s.rng)
	}
}

// Release frees every object, continuing past failures
func (s *Scene) Release() error {
	if s == nil {
		return nil
	}
	var errs []error
	if err := s.Cloud.Release(); err != nil {
		errs = append(errs, fmt.Errorf("point cloud: %w", err))
	}
	if err := s.LinesMaterial.Release(); err != nil {
		errs = append(errs, fmt.Errorf("line material: %w", err))
	}
	for _, solid := range s.Solids {
		if err := solid.Release(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", solid.Kind, err))
		}
	}
	s.Segments = nil
	return errors.Join(errs...)
}
