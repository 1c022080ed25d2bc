package scene

import (
	"github.com/lixenwraith/neuralfield/parameter"
	"github.com/lixenwraith/neuralfield/vmath"
)

// Segment is a connection between two points, copied by value at build time
type Segment struct {
	A, B vmath.Vec3
}

// BuildGraph samples point pairs sparsely and connects those closer than GraphMaxDistance
// Outer index steps by GraphOuterStride, inner index starts GraphInnerOffset later and steps by
// GraphInnerStride; building stops once maxSegments are emitted
func BuildGraph(positions []float32, count, maxSegments int) []Segment {
	if n := len(positions) / 3; count > n {
		count = n
	}
	if maxSegments <= 0 {
		return nil
	}

	segments := make([]Segment, 0, maxSegments)
	for i := 0; i < count && len(segments) < maxSegments; i += parameter.GraphOuterStride {
		a := vmath.V3At(positions, i)
		for j := i + parameter.GraphInnerOffset; j < count && len(segments) < maxSegments; j += parameter.GraphInnerStride {
			b := vmath.V3At(positions, j)
			if vmath.V3Dist(a, b) < parameter.GraphMaxDistance {
				segments = append(segments, Segment{A: a, B: b})
			}
		}
	}
	return segments
}
