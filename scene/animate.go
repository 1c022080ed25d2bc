package scene

import (
	"github.com/chewxy/math32"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/vmath"
)

// Pointer is a read-only snapshot of the normalized pointer position, X and Y in [-1,1]
type Pointer struct {
	X, Y float32
}

// DriftMode selects how floating solids move
type DriftMode uint8

const (
	// DriftOscillate computes each solid's offset from its base as a bounded function of time
	DriftOscillate DriftMode = iota
	// DriftAccumulate adds a per-frame increment to the current position, drifting without bound
	DriftAccumulate
)

// String returns the config spelling of the mode
func (m DriftMode) String() string {
	if m == DriftAccumulate {
		return "accumulate"
	}
	return "oscillate"
}

// ParseDriftMode resolves a config value, ok is false for unknown spellings
func ParseDriftMode(s string) (DriftMode, bool) {
	switch s {
	case "", "oscillate":
		return DriftOscillate, true
	case "accumulate":
		return DriftAccumulate, true
	default:
		return DriftOscillate, false
	}
}

// Oscillation amplitudes reproduce the travel of the per-frame increments at ReferenceFPS:
// integrating step*sin(rate*t) per frame gives step*fps/rate*cos(rate*t)
var (
	floatAmpY = float32(parameter.SolidFloatStepY * parameter.ReferenceFPS / parameter.SolidFloatRateY)
	floatAmpX = float32(parameter.SolidFloatStepX * parameter.ReferenceFPS / parameter.SolidFloatRateX)
)

// Animator advances scene state from elapsed time and a pointer snapshot
type Animator struct {
	Drift DriftMode
}

// Step applies one frame at elapsed seconds t
// Rotations and scale are pure functions of (t, ptr); camera easing and accumulate-mode drift
// depend on the previous frame
func (a *Animator) Step(s *Scene, t float32, ptr Pointer) {
	a.stepPoints(s, t, ptr)

	s.LinesTransform.Rotation.X = t * parameter.LinesSpinX
	s.LinesTransform.Rotation.Y = t * parameter.LinesSpinY

	for _, solid := range s.Solids {
		a.stepSolid(solid, t)
	}

	stepCamera(s.Camera, ptr)
}

func (a *Animator) stepPoints(s *Scene, t float32, ptr Pointer) {
	s.PointsTransform.Rotation.X = t*parameter.PointsSpinX + ptr.Y*parameter.PointsPointerTilt
	s.PointsTransform.Rotation.Y = t*parameter.PointsSpinY + ptr.X*parameter.PointsPointerTilt
	s.PointsTransform.Scale = 1 + math32.Sin(t*parameter.PointsBreatheRate)*parameter.PointsBreatheAmount
}

func (a *Animator) stepSolid(s *Solid, t float32) {
	k := float32(s.Index)
	s.Transform.Rotation = vmath.Euler{
		X: t * (parameter.SolidSpinBaseX + k*parameter.SolidSpinStepX),
		Y: t * (parameter.SolidSpinBaseY + k*parameter.SolidSpinStepY),
		Z: t * (parameter.SolidSpinBaseZ + k*parameter.SolidSpinStepZ),
	}

	phase := s.Phase()
	switch a.Drift {
	case DriftAccumulate:
		s.Transform.Position.Y += math32.Sin(t*parameter.SolidFloatRateY+phase) * parameter.SolidFloatStepY
		s.Transform.Position.X += math32.Cos(t*parameter.SolidFloatRateX+phase) * parameter.SolidFloatStepX
	default:
		s.Transform.Position.Y = s.Base.Y + floatAmpY*(math32.Cos(phase)-math32.Cos(t*parameter.SolidFloatRateY+phase))
		s.Transform.Position.X = s.Base.X + floatAmpX*(math32.Sin(t*parameter.SolidFloatRateX+phase)-math32.Sin(phase))
	}
}

// stepCamera eases the camera toward the pointer-derived offset and re-aims at the origin
func stepCamera(c *Camera, ptr Pointer) {
	if c == nil {
		return
	}
	targetX := ptr.X * parameter.CameraPointerReach
	targetY := ptr.Y * parameter.CameraPointerReach
	c.Position.X += (targetX - c.Position.X) * parameter.CameraEasing
	c.Position.Y += (targetY - c.Position.Y) * parameter.CameraEasing
	c.LookAt(vmath.Vec3{})
}
