package platform

import "fmt"

// InitError reports that the windowing subsystem could not start
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("GLFW initialisation failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }

// WindowError reports that the window or its context could not be created
type WindowError struct {
	Width, Height int
	Major, Minor  int
	Err           error
}

func (e *WindowError) Error() string {
	return fmt.Sprintf("GLFW window creation failed (%dx%d, OpenGL %d.%d): %v",
		e.Width, e.Height, e.Major, e.Minor, e.Err)
}

func (e *WindowError) Unwrap() error { return e.Err }

// ExtensionError reports that the GL function table could not be loaded
type ExtensionError struct {
	Err error
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("OpenGL function loading failed: %v", e.Err)
}

func (e *ExtensionError) Unwrap() error { return e.Err }
