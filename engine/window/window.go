package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window provides platform windowing with an OpenGL core-profile context. It wraps
// GLFW behind a small interface: the render loop asks it for dimensions, swaps
// buffers, and pumps events; everything else is out of its hands.
type Window interface {
	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// SetResizeCallback sets the function called when the framebuffer is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// IsRunning returns true while the window is open. Pressing Escape or closing
	// the window ends the run.
	//
	// Returns:
	//   - bool: true if the window is still active
	IsRunning() bool

	// SwapBuffers presents the rendered frame.
	SwapBuffers()

	// PollEvents processes pending window and input events.
	PollEvents()

	// Close destroys the window and terminates the platform layer.
	Close()
}

// glWindow is the implementation of the Window interface.
type glWindow struct {
	title    string
	width    int
	height   int
	window   *glfw.Window
	onResize func(width, height int)
}

// Ensure glWindow implements Window interface.
var _ Window = &glWindow{}

// NewWindow creates a GLFW window with a current OpenGL 4.1 core-profile context,
// configured with the provided options. The calling goroutine is locked to its OS
// thread; all subsequent GL and window calls must happen on it.
//
// Parameters:
//   - options: variadic list of WindowBuilderOption functions to configure the window
//
// Returns:
//   - Window: the newly created window
//   - error: error if GLFW or the window cannot be initialized
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	runtime.LockOSThread()

	w := &glWindow{
		title:  "Tableau",
		width:  1000,
		height: 800,
	}
	for _, option := range options {
		option(w)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	// 4.1 core is the highest version available across all supported desktops.
	// Reference: https://www.glfw.org/docs/latest/window_guide.html#window_hints_ctx
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(w.width, w.height, w.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}
	w.window = win
	win.MakeContextCurrent()

	// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Window.SetKeyCallback
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			win.SetShouldClose(true)
		}
	})

	// Track framebuffer size rather than window size: on high-DPI displays they
	// differ and the viewport needs pixels.
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width = width
		w.height = height
		if w.onResize != nil {
			w.onResize(width, height)
		}
	})

	fbWidth, fbHeight := win.GetFramebufferSize()
	w.width = fbWidth
	w.height = fbHeight

	return w, nil
}

func (w *glWindow) Width() int {
	return w.width
}

func (w *glWindow) Height() int {
	return w.height
}

func (w *glWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *glWindow) IsRunning() bool {
	return w.window != nil && !w.window.ShouldClose()
}

func (w *glWindow) SwapBuffers() {
	if w.window != nil {
		w.window.SwapBuffers()
	}
}

func (w *glWindow) PollEvents() {
	glfw.PollEvents()
}

func (w *glWindow) Close() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
	glfw.Terminate()
}
