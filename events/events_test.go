package events

import (
	"sync"
	"testing"
)

func TestBusBroadcast(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(EventResize, func(ev Event) { got = append(got, "a") })
	bus.Subscribe(EventResize, func(ev Event) { got = append(got, "b") })
	bus.Subscribe(EventQuit, func(ev Event) { got = append(got, "quit") })

	if n := bus.Publish(EventResize, &ResizePayload{Width: 10, Height: 5}); n != 2 {
		t.Fatalf("Publish reached %d handlers, want 2", n)
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("delivery order %v", got)
	}
}

func TestBusPayload(t *testing.T) {
	bus := NewBus()
	var payload *PointerMovePayload
	bus.Subscribe(EventPointerMove, func(ev Event) {
		payload, _ = ev.Payload.(*PointerMovePayload)
		if ev.Timestamp.IsZero() {
			t.Error("event not stamped")
		}
	})

	bus.Publish(EventPointerMove, &PointerMovePayload{X: 0.5, Y: -0.5})
	if payload == nil || payload.X != 0.5 || payload.Y != -0.5 {
		t.Errorf("payload %+v", payload)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	calls := 0
	unsub := bus.Subscribe(EventPointerMove, func(Event) { calls++ })
	keep := bus.Subscribe(EventPointerMove, func(Event) {})

	if bus.HandlerCount(EventPointerMove) != 2 {
		t.Fatalf("count %d", bus.HandlerCount(EventPointerMove))
	}

	unsub()
	unsub()
	if bus.HandlerCount(EventPointerMove) != 1 {
		t.Errorf("count after unsubscribe %d", bus.HandlerCount(EventPointerMove))
	}

	bus.Publish(EventPointerMove, nil)
	if calls != 0 {
		t.Errorf("removed handler called %d times", calls)
	}

	keep()
	if bus.HasHandlers(EventPointerMove) {
		t.Error("handlers left after both unsubscribed")
	}
	if n := bus.Publish(EventPointerMove, nil); n != 0 {
		t.Errorf("Publish reached %d", n)
	}
}

func TestBusUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	var unsub func()
	calls := 0
	unsub = bus.Subscribe(EventQuit, func(Event) {
		calls++
		unsub()
	})

	bus.Publish(EventQuit, nil)
	bus.Publish(EventQuit, nil)
	if calls != 1 {
		t.Errorf("self-removing handler called %d times", calls)
	}
}

func TestBusConcurrent(t *testing.T) {
	bus := NewBus()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				unsub := bus.Subscribe(EventResize, func(Event) {})
				bus.Publish(EventResize, &ResizePayload{})
				unsub()
			}
		}()
	}
	wg.Wait()

	if n := bus.HandlerCount(EventResize); n != 0 {
		t.Errorf("%d handlers leaked", n)
	}
}

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		col, row, w, h int
		x, y           float32
	}{
		{0, 0, 80, 24, -1, 1},
		{40, 12, 80, 24, 0, 0},
		{80, 24, 80, 24, 1, -1},
		{5, 5, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		x, y := NormalizePointer(tt.col, tt.row, tt.w, tt.h)
		if x != tt.x || y != tt.y {
			t.Errorf("NormalizePointer(%d,%d,%d,%d) = (%f,%f), want (%f,%f)", tt.col, tt.row, tt.w, tt.h, x, y, tt.x, tt.y)
		}
	}
}

func TestEventTypeString(t *testing.T) {
	if EventThemeToggle.String() != "theme_toggle" {
		t.Errorf("got %q", EventThemeToggle.String())
	}
	if EventType(99).String() != "unknown" {
		t.Error("out of range type should be unknown")
	}
}
