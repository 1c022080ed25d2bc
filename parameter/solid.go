package parameter

// Wireframe solid geometry
const (
	IcosahedronRadius = 0.8
	IcosahedronX      = -8.0
	IcosahedronY      = 4.0
	IcosahedronZ      = -3.0
	IcosahedronAlpha  = 0.3

	TorusRadius          = 1.0
	TorusTube            = 0.3
	TorusRadialSegments  = 8
	TorusTubularSegments = 16
	TorusX               = 8.0
	TorusY               = -3.0
	TorusZ               = -5.0
	TorusAlpha           = 0.4

	OctahedronRadius = 1.2
	OctahedronX      = 0.0
	OctahedronY      = 6.0
	OctahedronZ      = -8.0
	OctahedronAlpha  = 0.25
)
