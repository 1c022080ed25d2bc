//go:build !unix

package main

import (
	"context"
	"os"
	"os/signal"
)

var terminationSignals = []os.Signal{os.Interrupt}

func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, terminationSignals...)
}
