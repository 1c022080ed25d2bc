package scene

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/lixenwraith/neuralfield/vmath"
)

// Mesh is wireframe geometry: local-space vertices and index pairs forming edges
type Mesh struct {
	Vertices []vmath.Vec3
	Edges    [][2]int
}

// Release drops the vertex and edge buffers
func (m *Mesh) Release() error {
	if m == nil {
		return nil
	}
	m.Vertices = nil
	m.Edges = nil
	return nil
}

// edgeTolerance absorbs float32 error when matching edge lengths
const edgeTolerance = 1e-3

// shortestEdges connects every vertex pair whose distance equals the shortest pairwise distance
// For regular polyhedra these are exactly the polyhedron's edges
func shortestEdges(verts []vmath.Vec3) [][2]int {
	shortest := float32(math.MaxFloat32)
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			if d := vmath.V3Dist(verts[i], verts[j]); d > 0 && d < shortest {
				shortest = d
			}
		}
	}

	var edges [][2]int
	for i := range verts {
		for j := i + 1; j < len(verts); j++ {
			if math32.Abs(vmath.V3Dist(verts[i], verts[j])-shortest) < edgeTolerance*shortest {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	return edges
}

// NewIcosahedron builds a regular icosahedron inscribed in a sphere of the given radius
func NewIcosahedron(radius float32) *Mesh {
	t := (1 + math32.Sqrt(5)) / 2
	raw := []vmath.Vec3{
		{X: -1, Y: t, Z: 0}, {X: 1, Y: t, Z: 0}, {X: -1, Y: -t, Z: 0}, {X: 1, Y: -t, Z: 0},
		{X: 0, Y: -1, Z: t}, {X: 0, Y: 1, Z: t}, {X: 0, Y: -1, Z: -t}, {X: 0, Y: 1, Z: -t},
		{X: t, Y: 0, Z: -1}, {X: t, Y: 0, Z: 1}, {X: -t, Y: 0, Z: -1}, {X: -t, Y: 0, Z: 1},
	}
	verts := make([]vmath.Vec3, len(raw))
	for i, v := range raw {
		verts[i] = vmath.V3Scale(vmath.V3Normalize(v), radius)
	}
	return &Mesh{Vertices: verts, Edges: shortestEdges(verts)}
}

// NewOctahedron builds a regular octahedron with vertices on the axes at the given radius
func NewOctahedron(radius float32) *Mesh {
	verts := []vmath.Vec3{
		{X: radius, Y: 0, Z: 0}, {X: -radius, Y: 0, Z: 0},
		{X: 0, Y: radius, Z: 0}, {X: 0, Y: -radius, Z: 0},
		{X: 0, Y: 0, Z: radius}, {X: 0, Y: 0, Z: -radius},
	}
	return &Mesh{Vertices: verts, Edges: shortestEdges(verts)}
}

// NewTorus builds a torus in the XY plane as a grid of ring and tube edges
// radialSegments subdivide the tube cross-section, tubularSegments the ring
func NewTorus(radius, tube float32, radialSegments, tubularSegments int) *Mesh {
	m := &Mesh{
		Vertices: make([]vmath.Vec3, 0, radialSegments*tubularSegments),
		Edges:    make([][2]int, 0, radialSegments*tubularSegments*2),
	}

	for j := 0; j < radialSegments; j++ {
		v := float32(j) / float32(radialSegments) * 2 * math32.Pi
		for i := 0; i < tubularSegments; i++ {
			u := float32(i) / float32(tubularSegments) * 2 * math32.Pi
			ring := radius + tube*math32.Cos(v)
			m.Vertices = append(m.Vertices, vmath.Vec3{
				X: ring * math32.Cos(u),
				Y: ring * math32.Sin(u),
				Z: tube * math32.Sin(v),
			})
		}
	}

	idx := func(j, i int) int {
		return (j%radialSegments)*tubularSegments + i%tubularSegments
	}
	for j := 0; j < radialSegments; j++ {
		for i := 0; i < tubularSegments; i++ {
			m.Edges = append(m.Edges,
				[2]int{idx(j, i), idx(j, i+1)},
				[2]int{idx(j, i), idx(j+1, i)},
			)
		}
	}
	return m
}
