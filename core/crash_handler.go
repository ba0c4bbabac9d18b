package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync/atomic"

	"github.com/lixenwraith/zombie-fighter/terminal"
)

// Finisher is anything that can tear down the screen; tcell.Screen satisfies it
type Finisher interface {
	Fini()
}

type finisherBox struct{ f Finisher }

var crashScreen atomic.Pointer[finisherBox]

// SetCrashScreen registers the screen restored by HandleCrash, nil clears it
func SetCrashScreen(f Finisher) {
	if f == nil {
		crashScreen.Store(nil)
		return
	}
	crashScreen.Store(&finisherBox{f: f})
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if box := crashScreen.Load(); box != nil {
		box.f.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	// Use \r\n in case the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mZOMBIE-FIGHTER CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
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
