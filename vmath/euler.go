package vmath

import (
	"github.com/chewxy/math32"
)

// Euler holds rotation angles in radians, applied in XYZ order
// The composed matrix is Rx·Ry·Rz, so a vector is rotated about Z first and X last
type Euler struct {
	X, Y, Z float32
}

// Mat3 is a row-major 3x3 matrix
type Mat3 [9]float32

// RotationXYZ composes the rotation matrix for e
func RotationXYZ(e Euler) Mat3 {
	a, b := math32.Cos(e.X), math32.Sin(e.X)
	c, d := math32.Cos(e.Y), math32.Sin(e.Y)
	f, g := math32.Cos(e.Z), math32.Sin(e.Z)

	ae, af := a*f, a*g
	be, bf := b*f, b*g

	return Mat3{
		c * f, -c * g, d,
		af + be*d, ae - bf*d, -b * c,
		bf - ae*d, be + af*d, a * c,
	}
}

// Apply returns m·v
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Transform is rotation, uniform scale and translation, applied in that order to scale·v
type Transform struct {
	Position Vec3
	Rotation Euler
	Scale    float32
}

// NewTransform returns an identity transform at the given position
func NewTransform(pos Vec3) Transform {
	return Transform{Position: pos, Scale: 1}
}

// Matrix precomputes the rotation part for repeated Apply calls within a frame
func (t Transform) Matrix() Mat3 {
	return RotationXYZ(t.Rotation)
}

// ApplyWith maps a local-space point to world space using a precomputed rotation
func (t Transform) ApplyWith(m Mat3, v Vec3) Vec3 {
	return V3Add(m.Apply(V3Scale(v, t.Scale)), t.Position)
}
