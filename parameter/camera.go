package parameter

// Perspective camera
const (
	// CameraFOVDegrees is the vertical field of view
	CameraFOVDegrees = 75.0
	// CameraNear and CameraFar bound the visible depth range
	CameraNear = 0.1
	CameraFar  = 1000.0
	// CameraStartZ is the initial distance from the origin along +Z
	CameraStartZ = 5.0

	// CameraPointerReach scales the normalized pointer into a camera target offset
	CameraPointerReach = 0.5
	// CameraEasing is the per-frame exponential smoothing factor toward the target
	CameraEasing = 0.02

	// CellAspect is the height/width ratio of a terminal cell
	// Horizontal coordinates are doubled so projected geometry is not squashed
	CellAspect = 2.0
)
