// Command clear opens the window and clears it to red every frame.
package main

import (
	"runtime"

	"gl-steps/internal/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app.Main("clear")
}
