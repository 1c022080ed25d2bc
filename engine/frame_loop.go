package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/neuralfield/core"
)

// FrameFunc is called once per frame with the time elapsed since Start
type FrameFunc func(elapsed time.Duration)

// FrameLoop calls a frame function at a fixed interval on its own goroutine
// Elapsed time is read from the clock, so frames missed under load do not slow the animation
type FrameLoop struct {
	clock    Clock
	interval time.Duration
	start    time.Time

	frames atomic.Uint64

	// Control channels
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewFrameLoop creates a loop ticking every interval
func NewFrameLoop(clock Clock, interval time.Duration) *FrameLoop {
	if clock == nil {
		clock = NewTimeProvider()
	}
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	return &FrameLoop{
		clock:    clock,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start begins calling fn; a loop runs at most once and cannot restart after Stop
func (l *FrameLoop) Start(fn FrameFunc) {
	if fn == nil || l.stopped.Load() {
		return
	}
	if l.running.CompareAndSwap(false, true) {
		l.start = l.clock.Now()
		l.wg.Add(1)
		// Use core.Go for safe execution with centralized crash handling
		core.Go(func() { l.run(fn) })
	}
}

// Stop cancels the loop and waits for the goroutine to exit
// No frame function call is in progress or started once Stop returns
func (l *FrameLoop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stopChan)
		if l.running.CompareAndSwap(true, false) {
			l.wg.Wait()
			log.Printf("[loop] stopped after %d frames", l.frames.Load())
		}
	})
}

// Running reports whether the loop goroutine is active
func (l *FrameLoop) Running() bool {
	return l.running.Load()
}

// Frames returns the number of completed frames
func (l *FrameLoop) Frames() uint64 {
	return l.frames.Load()
}

func (l *FrameLoop) run(fn FrameFunc) {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stopChan:
			return
		case <-ticker.C:
		}

		// Stop may have raced with the tick
		select {
		case <-l.stopChan:
			return
		default:
		}

		fn(l.clock.Now().Sub(l.start))
		l.frames.Add(1)
	}
}
