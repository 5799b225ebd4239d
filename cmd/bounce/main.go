// Command bounce animates colored balls bouncing across the terminal.
package main

import (
	"github.com/lelandbatey/bouncing-block/core"
)

func main() {
	// Reset the terminal before the stack trace if the frame loop panics
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	Execute()
}
