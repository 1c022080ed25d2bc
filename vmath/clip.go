package vmath

// ClipSegment clips the segment (x1,y1)-(x2,y2) to the rectangle [minX,maxX]x[minY,maxY]
// using Liang-Barsky. ok is false when the segment lies entirely outside
func ClipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY float32) (cx1, cy1, cx2, cy2 float32, ok bool) {
	dx := x2 - x1
	dy := y2 - y1
	t0, t1 := float32(0), float32(1)

	p := [4]float32{-dx, dx, -dy, dy}
	q := [4]float32{x1 - minX, maxX - x1, y1 - minY, maxY - y1}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
