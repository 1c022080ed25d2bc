package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// CrashHandler restores the terminal after a panic, writing any escape sequences to w
type CrashHandler func(w io.Writer)

var (
	crashMu      sync.RWMutex
	crashCleanup CrashHandler

	// exit is swapped in tests
	exit = os.Exit
)

// SetCrashHandler installs the cleanup run before a crash report is printed
// Passing nil removes it
func SetCrashHandler(fn CrashHandler) {
	crashMu.Lock()
	crashCleanup = fn
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	reportCrash(os.Stderr, r, debug.Stack())
	exit(1)
}

func reportCrash(w io.Writer, r any, stack []byte) {
	crashMu.RLock()
	cleanup := crashCleanup
	crashMu.RUnlock()

	if cleanup != nil {
		func() {
			// A failing cleanup must not hide the original crash
			defer func() { _ = recover() }()
			cleanup(w)
		}()
	}

	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}

// Guard wraps fn for errgroup-style runners with the same panic recovery as Go
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
