package parameter

// Point cloud generation
const (
	// ParticleCount is the number of points generated per mount
	ParticleCount = 1500

	// ClusterSize is the number of consecutive points sharing a cluster center
	ClusterSize = 100
	// ClusterColumns is the grid width clusters tile in reading order
	ClusterColumns = 5
	// ClusterColumnOffset and ClusterRowOffset center the grid on the origin
	ClusterColumnOffset = 2
	ClusterRowOffset    = 1
	// ClusterSpacing is the distance between adjacent cluster centers
	ClusterSpacing = 8.0

	// JitterXY and JitterZ are the full widths of the uniform jitter around a center
	JitterXY = 6.0
	JitterZ  = 15.0

	// PointSizeMin and PointSizeMax bound the per-point size attribute
	PointSizeMin = 1.0
	PointSizeMax = 4.0

	// CoreRadius is the planar distance from the origin inside which points get the core hue
	CoreRadius = 3.0
	// AccentChance is the probability a non-core point gets the accent hue
	AccentChance = 0.4

	// PointOpacityDark and PointOpacityLight are the point material opacities per theme
	PointOpacityDark  = 0.9
	PointOpacityLight = 0.7
	// PointBaseSize is the material size multiplier applied before perspective attenuation
	PointBaseSize = 2.0
)

// Proximity graph
const (
	// GraphMaxSegments caps the number of emitted connection segments
	GraphMaxSegments = 300
	// GraphOuterStride and GraphInnerStride control the sparse pair sampling
	GraphOuterStride = 3
	GraphInnerStride = 7
	// GraphInnerOffset is the first inner index relative to the outer index
	GraphInnerOffset = 3
	// GraphMaxDistance is the exclusive distance threshold for connecting two points
	GraphMaxDistance = 4.0
	// LineOpacity is the line material opacity
	LineOpacity = 0.15
)
