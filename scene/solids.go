package scene

import (
	"errors"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/vmath"
)

// SolidKind enumerates the floating wireframe shapes
type SolidKind uint8

const (
	KindIcosahedron SolidKind = iota
	KindTorus
	KindOctahedron
)

// String returns the shape name
func (k SolidKind) String() string {
	switch k {
	case KindIcosahedron:
		return "icosahedron"
	case KindTorus:
		return "torus"
	case KindOctahedron:
		return "octahedron"
	default:
		return "unknown"
	}
}

// Solid is one floating wireframe shape
// Index is its position in the creation order and doubles as its animation phase
type Solid struct {
	Kind      SolidKind
	Index     int
	Base      vmath.Vec3
	Transform vmath.Transform
	Mesh      *Mesh
	Material  *Material
}

// Phase returns the animation phase offset
func (s *Solid) Phase() float32 {
	return float32(s.Index)
}

// Release frees geometry and material, attempting both
func (s *Solid) Release() error {
	if s == nil {
		return nil
	}
	return releaseEach(s.Mesh.Release, s.Material.Release)
}

// releaseEach runs every release function and joins the failures
func releaseEach(fns ...func() error) error {
	var errs []error
	for _, fn := range fns {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// CreateSolids places the fixed sequence of wireframe solids for a theme
// Colors alternate between the two accent hues by index
func CreateSolids(dark bool) []*Solid {
	specs := []struct {
		kind    SolidKind
		mesh    *Mesh
		pos     vmath.Vec3
		opacity float32
	}{
		{
			KindIcosahedron,
			NewIcosahedron(parameter.IcosahedronRadius),
			vmath.V3(parameter.IcosahedronX, parameter.IcosahedronY, parameter.IcosahedronZ),
			parameter.IcosahedronAlpha,
		},
		{
			KindTorus,
			NewTorus(parameter.TorusRadius, parameter.TorusTube, parameter.TorusRadialSegments, parameter.TorusTubularSegments),
			vmath.V3(parameter.TorusX, parameter.TorusY, parameter.TorusZ),
			parameter.TorusAlpha,
		},
		{
			KindOctahedron,
			NewOctahedron(parameter.OctahedronRadius),
			vmath.V3(parameter.OctahedronX, parameter.OctahedronY, parameter.OctahedronZ),
			parameter.OctahedronAlpha,
		},
	}

	solids := make([]*Solid, len(specs))
	for i, sp := range specs {
		color := visual.PrimaryAccent(dark)
		if i%2 == 1 {
			color = visual.SecondaryAccent(dark)
		}
		solids[i] = &Solid{
			Kind:      sp.kind,
			Index:     i,
			Base:      sp.pos,
			Transform: vmath.NewTransform(sp.pos),
			Mesh:      sp.mesh,
			Material:  NewMaterial(color, sp.opacity),
		}
	}
	return solids
}
