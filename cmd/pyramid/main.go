// Command pyramid draws the spinning, pulsing pyramid in perspective.
package main

import (
	"runtime"

	"gl-steps/internal/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app.Main("pyramid")
}
