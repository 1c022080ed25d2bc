package scene

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Material is a flat color with constant opacity
// Wireframe materials never change color after creation
type Material struct {
	Color    colorful.Color
	Opacity  float32
	released bool
}

// NewMaterial creates a material
func NewMaterial(c colorful.Color, opacity float32) *Material {
	return &Material{Color: c, Opacity: opacity}
}

// Release marks the material unusable; repeated calls are no-ops
func (m *Material) Release() error {
	if m == nil {
		return nil
	}
	m.released = true
	return nil
}

// Released reports whether Release has run
func (m *Material) Released() bool {
	return m == nil || m.released
}
