package scene

import (
	"math/rand/v2"

	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/parameter/visual"
	"github.com/lixenwraith/neuralfield/vmath"
)

// Cloud is the point cloud as flat attribute buffers
// Positions and Colors hold 3 floats per point, Sizes one
type Cloud struct {
	Positions []float32
	Colors    []float32
	Sizes     []float32
	Count     int

	// Material opacity follows the theme; color comes from the per-point buffer
	Opacity float32
}

// ClusterCenter returns the grid center for a cluster index
// Clusters tile the XY plane in reading order, ClusterColumns wide
func ClusterCenter(cluster int) vmath.Vec3 {
	col := cluster%parameter.ClusterColumns - parameter.ClusterColumnOffset
	row := cluster/parameter.ClusterColumns - parameter.ClusterRowOffset
	return vmath.Vec3{
		X: float32(col) * parameter.ClusterSpacing,
		Y: float32(row) * parameter.ClusterSpacing,
	}
}

// PointOpacity returns the point material opacity for a theme
func PointOpacity(dark bool) float32 {
	if dark {
		return parameter.PointOpacityDark
	}
	return parameter.PointOpacityLight
}

// jitter returns a uniform sample in [-span/2, span/2)
func jitter(rng *rand.Rand, span float32) float32 {
	return (rng.Float32() - 0.5) * span
}

// GenerateCloud synthesizes count clustered points with sizes and theme colors
func GenerateCloud(count int, dark bool, rng *rand.Rand) *Cloud {
	if count < 0 {
		count = 0
	}
	c := &Cloud{
		Positions: make([]float32, count*3),
		Colors:    make([]float32, count*3),
		Sizes:     make([]float32, count),
		Count:     count,
		Opacity:   PointOpacity(dark),
	}

	for i := 0; i < count; i++ {
		center := ClusterCenter(i / parameter.ClusterSize)

		x := center.X + jitter(rng, parameter.JitterXY)
		y := center.Y + jitter(rng, parameter.JitterXY)
		z := center.Z + jitter(rng, parameter.JitterZ)
		c.Positions[i*3] = x
		c.Positions[i*3+1] = y
		c.Positions[i*3+2] = z

		c.Sizes[i] = parameter.PointSizeMin + rng.Float32()*(parameter.PointSizeMax-parameter.PointSizeMin)

		c.Colors[i*3], c.Colors[i*3+1], c.Colors[i*3+2] = PointColor(x, y, dark, rng)
	}

	return c
}

// PointColor applies the color policy to a single point
// The accent/shade bucket is drawn fresh on every call
func PointColor(x, y float32, dark bool, rng *rand.Rand) (r, g, b float32) {
	if vmath.PlanarDist(x, y) < parameter.CoreRadius {
		return visual.Core(dark).Floats()
	}
	if rng.Float32() < parameter.AccentChance {
		return visual.Accent(dark).Floats()
	}
	return visual.Shade(dark).Floats()
}

// Recolor rewrites every point color in place and updates the material opacity
// Positions and sizes are untouched
func (c *Cloud) Recolor(dark bool, rng *rand.Rand) {
	for i := 0; i < c.Count; i++ {
		x, y := c.Positions[i*3], c.Positions[i*3+1]
		c.Colors[i*3], c.Colors[i*3+1], c.Colors[i*3+2] = PointColor(x, y, dark, rng)
	}
	c.Opacity = PointOpacity(dark)
}

// Position returns point i
func (c *Cloud) Position(i int) vmath.Vec3 {
	return vmath.V3At(c.Positions, i)
}

// Release drops the attribute buffers; a nil or released cloud is a no-op
func (c *Cloud) Release() error {
	if c == nil {
		return nil
	}
	c.Positions = nil
	c.Colors = nil
	c.Sizes = nil
	c.Count = 0
	return nil
}
