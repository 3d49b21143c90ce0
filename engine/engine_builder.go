package engine

import "time"

// EngineOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied during NewEngine.
type EngineOption func(*engine)

// WithProfiling enables or disables frame rate and memory profiling output.
//
// Parameters:
//   - enabled: if true, enables profiling output
//
// Returns:
//   - EngineOption: option function to apply
func WithProfiling(enabled bool) EngineOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithFrameLimit sets an optional frame rate cap in frames per second.
// Pass 0 to uncap the frame loop (default).
//
// Parameters:
//   - fps: maximum frames per second (0 = uncapped)
//
// Returns:
//   - EngineOption: option function to apply
func WithFrameLimit(fps float64) EngineOption {
	return func(e *engine) {
		if fps <= 0 {
			e.frameLimit = 0
			return
		}
		e.frameLimit = time.Second / time.Duration(fps)
	}
}

// WithClearColor sets the background color the frame buffer is cleared to.
//
// Parameters:
//   - r, g, b, a: the clear color components
//
// Returns:
//   - EngineOption: option function to apply
func WithClearColor(r, g, b, a float32) EngineOption {
	return func(e *engine) {
		e.clearColor = [4]float32{r, g, b, a}
	}
}
