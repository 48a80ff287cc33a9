package main

import (
	"runtime"

	"gl-steps/internal/app"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	app.Main("triangle")
}
