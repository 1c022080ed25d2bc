package events

import (
	"time"
)

// Event is a single typed message with an optional payload
type Event struct {
	Type      EventType
	Payload   any
	Timestamp time.Time
}

// PointerMovePayload carries the normalized pointer and the raw cell it came from
// X and Y lie in [-1,1], Y pointing up
type PointerMovePayload struct {
	X, Y     float32
	Col, Row int
}

// ResizePayload carries the new viewport size in cells
type ResizePayload struct {
	Width  int
	Height int
}

// ThemePayload carries the requested theme
type ThemePayload struct {
	Dark bool
}

// NormalizePointer maps a cell on a width x height viewport to [-1,1] on both axes
// Rows grow downward on screen, so Y is flipped
func NormalizePointer(col, row, width, height int) (x, y float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	x = float32(col)/float32(width)*2 - 1
	y = -(float32(row)/float32(height))*2 + 1
	return x, y
}
