package scene

import (
	"errors"
	"testing"

	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/vmath"
)

func TestMeshEdgeCounts(t *testing.T) {
	tests := []struct {
		name  string
		mesh  *Mesh
		verts int
		edges int
	}{
		{"icosahedron", NewIcosahedron(0.8), 12, 30},
		{"octahedron", NewOctahedron(1.2), 6, 12},
		{"torus", NewTorus(1, 0.3, 8, 16), 128, 256},
	}
	for _, tt := range tests {
		if len(tt.mesh.Vertices) != tt.verts {
			t.Errorf("%s: %d vertices, want %d", tt.name, len(tt.mesh.Vertices), tt.verts)
		}
		if len(tt.mesh.Edges) != tt.edges {
			t.Errorf("%s: %d edges, want %d", tt.name, len(tt.mesh.Edges), tt.edges)
		}
	}
}

func TestPolyhedronRadius(t *testing.T) {
	for _, v := range NewIcosahedron(0.8).Vertices {
		if abs32(vmath.V3Mag(v)-0.8) > 1e-5 {
			t.Fatalf("icosahedron vertex at radius %f", vmath.V3Mag(v))
		}
	}
	for _, v := range NewOctahedron(1.2).Vertices {
		if abs32(vmath.V3Mag(v)-1.2) > 1e-5 {
			t.Fatalf("octahedron vertex at radius %f", vmath.V3Mag(v))
		}
	}
}

func TestCreateSolids(t *testing.T) {
	solids := CreateSolids(true)
	if len(solids) != 3 {
		t.Fatalf("got %d solids", len(solids))
	}

	want := []struct {
		kind    SolidKind
		pos     vmath.Vec3
		opacity float32
	}{
		{KindIcosahedron, vmath.V3(-8, 4, -3), 0.3},
		{KindTorus, vmath.V3(8, -3, -5), 0.4},
		{KindOctahedron, vmath.V3(0, 6, -8), 0.25},
	}
	for i, w := range want {
		s := solids[i]
		if s.Kind != w.kind || s.Index != i {
			t.Errorf("solid %d: kind %s index %d", i, s.Kind, s.Index)
		}
		if s.Base != w.pos || s.Transform.Position != w.pos {
			t.Errorf("solid %d at %+v", i, s.Transform.Position)
		}
		if s.Material.Opacity != w.opacity {
			t.Errorf("solid %d opacity %f", i, s.Material.Opacity)
		}
	}

	if solids[0].Material.Color != visual.Emerald || solids[1].Material.Color != visual.Sky {
		t.Error("dark theme solids should alternate emerald/sky")
	}
	light := CreateSolids(false)
	if light[0].Material.Color != visual.Sky || light[2].Material.Color != visual.Sky {
		t.Error("light theme solids should lead with sky")
	}
}

func TestSolidRelease(t *testing.T) {
	for _, s := range CreateSolids(true) {
		if err := s.Release(); err != nil {
			t.Fatalf("%s: %v", s.Kind, err)
		}
		if !s.Material.Released() || s.Mesh.Vertices != nil {
			t.Errorf("%s not released", s.Kind)
		}
		if err := s.Release(); err != nil {
			t.Errorf("%s repeated release: %v", s.Kind, err)
		}
	}
}

func TestReleaseEachReportsEveryFailure(t *testing.T) {
	errMesh := errors.New("mesh busy")
	errMat := errors.New("material busy")
	ran := 0
	err := releaseEach(
		func() error { ran++; return errMesh },
		func() error { ran++; return nil },
		func() error { ran++; return errMat },
	)
	if ran != 3 {
		t.Errorf("ran %d releases, want 3", ran)
	}
	if !errors.Is(err, errMesh) || !errors.Is(err, errMat) {
		t.Errorf("joined error %v lost a failure", err)
	}
	if err := releaseEach(); err != nil {
		t.Errorf("empty release: %v", err)
	}
}
