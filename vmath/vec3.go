package vmath

import (
	"github.com/chewxy/math32"
)

// Vec3 is a float32 3D vector, matching the precision of the scene's flat position buffers
type Vec3 struct {
	X, Y, Z float32
}

// V3 builds a vector from components
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// V3At reads the vector stored at index i of an interleaved xyz buffer
func V3At(buf []float32, i int) Vec3 {
	return Vec3{buf[i*3], buf[i*3+1], buf[i*3+2]}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// V3Cross returns a × b (right-handed)
func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3Mag(v Vec3) float32 {
	return math32.Sqrt(V3MagSq(v))
}

// V3Dist returns the Euclidean distance between two points
func V3Dist(a, b Vec3) float32 {
	return V3Mag(V3Sub(a, b))
}

// V3Normalize returns the unit vector, or zero for a zero-length input
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	inv := 1 / mag
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

// PlanarDist returns the distance from the origin using only X and Y
func PlanarDist(x, y float32) float32 {
	return math32.Sqrt(x*x + y*y)
}
