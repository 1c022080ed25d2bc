package events

// EventType represents the type of backdrop event
type EventType int

const (
	// EventPointerMove signals the pointer moved over the surface
	// Trigger: terminal mouse motion
	// Consumer: host pointer listener | Payload: *PointerMovePayload
	// Latency: one frame (stored, read at next tick)
	EventPointerMove EventType = iota

	// EventResize signals the viewport changed size
	// Trigger: terminal resize
	// Consumer: host resize listener | Payload: *ResizePayload
	EventResize

	// EventThemeToggle signals a theme change request
	// Trigger: 't' key, config file change
	// Consumer: page, which pushes the flag into the host | Payload: *ThemePayload
	EventThemeToggle

	// EventQuit signals the page should unmount and exit
	// Trigger: 'q', Esc, Ctrl-C, termination signal
	// Consumer: page | Payload: nil
	EventQuit

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	EventPointerMove: "pointer_move",
	EventResize:      "resize",
	EventThemeToggle: "theme_toggle",
	EventQuit:        "quit",
}

// String returns the event name for logs
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "unknown"
	}
	return eventTypeNames[t]
}
