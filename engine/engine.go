package engine

import (
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Carmen-Shannon/tableau-go/engine/camera"
	"github.com/Carmen-Shannon/tableau-go/engine/profiler"
	"github.com/Carmen-Shannon/tableau-go/engine/scene"
	"github.com/Carmen-Shannon/tableau-go/engine/shader"
	"github.com/Carmen-Shannon/tableau-go/engine/window"
)

// engine is the implementation of the Engine interface.
type engine struct {
	window   window.Window
	sh       shader.Shader
	composer scene.Composer
	camera   camera.Camera

	profiler         *profiler.Profiler
	profilingEnabled bool

	clearColor [4]float32

	frameLimit   time.Duration // minimum frame duration; 0 = uncapped
	tickCallback func(deltaTime float32)
}

// Engine drives the frame loop: it owns the GL pipeline state, applies the camera,
// renders the scene, and presents. Everything runs on the thread that owns the GL
// context; there are no render goroutines.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables frame rate and memory profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables profiling output.
	DisableProfiler()

	// SetTickCallback registers a function called once per frame before the scene
	// renders. Use it for per-frame updates that live outside the scene.
	//
	// Parameters:
	//   - callback: function receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// Run starts the frame loop and blocks until the window closes. The scene must
	// be prepared before Run is called.
	Run()
}

// Ensure engine implements Engine interface.
var _ Engine = &engine{}

// NewEngine creates an Engine over the given collaborators. All four are required and
// NewEngine panics if any of them is nil.
//
// Parameters:
//   - win: the window the engine renders into (must not be nil)
//   - sh: the scene's shader program (must not be nil)
//   - composer: the prepared scene composer (must not be nil)
//   - cam: the camera applied each frame (must not be nil)
//   - options: functional options to further configure the engine
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(
	win window.Window,
	sh shader.Shader,
	composer scene.Composer,
	cam camera.Camera,
	options ...EngineOption,
) Engine {
	if win == nil {
		panic("engine: NewEngine requires a non-nil Window")
	}
	if sh == nil {
		panic("engine: NewEngine requires a non-nil Shader")
	}
	if composer == nil {
		panic("engine: NewEngine requires a non-nil Composer")
	}
	if cam == nil {
		panic("engine: NewEngine requires a non-nil Camera")
	}

	e := &engine{
		window:     win,
		sh:         sh,
		composer:   composer,
		camera:     cam,
		profiler:   profiler.NewProfiler(),
		clearColor: [4]float32{0, 0, 0, 1},
	}
	for _, opt := range options {
		opt(e)
	}
	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.tickCallback = callback
}

func (e *engine) Run() {
	// Depth testing for the opaque objects, alpha blending for the glass pieces.
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(e.clearColor[0], e.clearColor[1], e.clearColor[2], e.clearColor[3])

	e.window.SetResizeCallback(func(width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})

	lastFrame := time.Now()
	for e.window.IsRunning() {
		now := time.Now()
		dt := float32(now.Sub(lastFrame).Seconds())
		lastFrame = now

		if e.tickCallback != nil {
			e.tickCallback(dt)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		aspect := float32(e.window.Width()) / float32(max(e.window.Height(), 1))
		e.sh.Use()
		e.camera.Apply(e.sh, aspect)
		e.composer.RenderScene()

		if e.profilingEnabled {
			e.profiler.Tick()
		}

		e.window.SwapBuffers()
		e.window.PollEvents()

		if e.frameLimit > 0 {
			if remaining := e.frameLimit - time.Since(now); remaining > 0 {
				time.Sleep(remaining)
			}
		}
	}
}
