package parameter

import (
	"time"
)

// Frame scheduling
const (
	// FrameUpdateInterval is the default render cadence (60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond
	// ReferenceFPS is the display rate the per-frame drift increments were tuned for
	ReferenceFPS = 60.0
)

// Point cloud motion
const (
	PointsSpinX         = 0.0005
	PointsSpinY         = 0.001
	PointsPointerTilt   = 0.05
	PointsBreatheRate   = 0.5
	PointsBreatheAmount = 0.02
)

// Connection graph motion
const (
	LinesSpinX = 0.0003
	LinesSpinY = 0.0007
)

// Floating solid motion
// Per-axis rate is base + index*step, staggering the solids' rotation speeds
const (
	SolidSpinBaseX = 0.003
	SolidSpinStepX = 0.001
	SolidSpinBaseY = 0.002
	SolidSpinStepY = 0.0015
	SolidSpinBaseZ = 0.001
	SolidSpinStepZ = 0.0008

	// SolidFloatRateY and SolidFloatRateX are the angular rates of the floating motion
	SolidFloatRateY = 0.5
	SolidFloatRateX = 0.3
	// SolidFloatStepY and SolidFloatStepX are the per-frame increments at ReferenceFPS
	SolidFloatStepY = 0.01
	SolidFloatStepX = 0.005
)
