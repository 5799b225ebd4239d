// Package core holds process-wide crash handling shared by every goroutine
// the command starts.
package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lelandbatey/bouncing-block/terminal"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()

	// Overridden in tests
	crashOut io.Writer = os.Stderr
	resetOut io.Writer = os.Stdout
	exit               = os.Exit
)

// SetCleanup registers the function that restores the terminal on crash
// Screen mode registers screen.Fini; nil falls back to EmergencyReset
func SetCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	cleanupMu.Lock()
	fn := cleanup
	cleanupMu.Unlock()

	if fn != nil {
		fn()
	} else {
		terminal.EmergencyReset(resetOut)
	}

	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
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
