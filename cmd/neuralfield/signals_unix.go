//go:build unix

package main

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// terminationSignals end the page with an orderly unmount
var terminationSignals = []os.Signal{unix.SIGINT, unix.SIGTERM, unix.SIGHUP}

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, terminationSignals...)
}
