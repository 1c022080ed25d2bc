package scene

import (
	"testing"

	"github.com/lixenwraith/neuralfield/vmath"
)

func TestCameraViewport(t *testing.T) {
	c := NewCamera(80, 24)
	if want := float32(80) / 48; abs32(c.Aspect-want) > 1e-6 {
		t.Errorf("aspect %f, want %f", c.Aspect, want)
	}
	c.SetViewport(120, 30)
	if want := float32(2); abs32(c.Aspect-want) > 1e-6 {
		t.Errorf("aspect after resize %f", c.Aspect)
	}
	c.SetViewport(0, 0)
	if c.Aspect != 1 {
		t.Errorf("degenerate viewport aspect %f", c.Aspect)
	}
}

func TestCameraProject(t *testing.T) {
	c := NewCamera(80, 40)

	x, y, depth, ok := c.Project(vmath.Vec3{})
	if !ok || x != 0 || y != 0 || abs32(depth-5) > 1e-6 {
		t.Fatalf("origin projected to (%f,%f,%f,%v)", x, y, depth, ok)
	}

	// Up and right in world space map to up and right on screen
	x, y, _, _ = c.Project(vmath.V3(1, 1, 0))
	if x <= 0 || y <= 0 {
		t.Errorf("(1,1,0) projected to (%f,%f)", x, y)
	}

	// Behind the camera
	if _, _, _, ok := c.Project(vmath.V3(0, 0, 10)); ok {
		t.Error("point behind camera reported visible")
	}

	// Nearer points spread wider
	xFar, _, _, _ := c.Project(vmath.V3(1, 0, -5))
	xNear, _, _, _ := c.Project(vmath.V3(1, 0, 2))
	if xNear <= xFar {
		t.Errorf("perspective missing: near %f far %f", xNear, xFar)
	}
}

func TestToCell(t *testing.T) {
	tests := []struct {
		ndcX, ndcY float32
		x, y       float32
	}{
		{0, 0, 40, 12},
		{-1, 1, 0, 0},
		{1, -1, 80, 24},
	}
	for _, tt := range tests {
		x, y := ToCell(tt.ndcX, tt.ndcY, 80, 24)
		if x != tt.x || y != tt.y {
			t.Errorf("ToCell(%f,%f) = (%f,%f)", tt.ndcX, tt.ndcY, x, y)
		}
	}
}
