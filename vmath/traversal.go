package vmath

// LineTraverser is a zero-allocation Bresenham iterator over the cells of a segment
type LineTraverser struct {
	currX, currY     int
	targetX, targetY int
	dx, dy           int
	stepX, stepY     int
	err              int

	started bool
	done    bool
}

// NewLineTraverser creates an iterator from (x1, y1) to (x2, y2), both endpoints inclusive
func NewLineTraverser(x1, y1, x2, y2 int) LineTraverser {
	t := LineTraverser{
		currX: x1, currY: y1,
		targetX: x2, targetY: y2,
		stepX: 1, stepY: 1,
	}

	t.dx = x2 - x1
	if t.dx < 0 {
		t.dx = -t.dx
		t.stepX = -1
	}
	// dy is kept non-positive so err = dx + dy balances both axes
	t.dy = y1 - y2
	if t.dy > 0 {
		t.dy = -t.dy
		t.stepY = -1
	}
	t.err = t.dx + t.dy

	return t
}

// Next advances the traverser to the next cell.
// Returns true if a valid cell is available via Pos().
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}

	if t.currX == t.targetX && t.currY == t.targetY {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.currX += t.stepX
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.currY += t.stepY
	}

	return true
}

// Pos returns the current grid coordinates.
func (t *LineTraverser) Pos() (int, int) {
	return t.currX, t.currY
}

// Slope returns the dominant direction of the segment: 0 horizontal, 1 vertical,
// 2 rising diagonal (screen y decreasing with x), 3 falling diagonal
func (t *LineTraverser) Slope() int {
	adx, ady := t.dx, -t.dy
	switch {
	case ady*2 < adx:
		return 0
	case adx*2 < ady:
		return 1
	case t.stepX == t.stepY:
		return 3
	default:
		return 2
	}
}
