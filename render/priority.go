package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	// Backdrop layers, drawn first so page content lands on top
	PriorityBackground RenderPriority = iota
	PriorityLines
	PrioritySolids
	PriorityPoints

	// Page layers
	PriorityContent
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
