package shader

import "github.com/go-gl/mathgl/mgl32"

// Recorder is a headless Shader backend that records the last value written to every
// uniform name instead of talking to a GPU. It backs tests and tooling that need to
// observe uniform state without an OpenGL context.
type Recorder struct {
	values map[string]any
}

// Ensure Recorder implements Shader interface.
var _ Shader = &Recorder{}

// NewRecorder creates a Recorder with empty uniform state.
//
// Returns:
//   - *Recorder: the newly created recorder
func NewRecorder() *Recorder {
	return &Recorder{values: make(map[string]any)}
}

// Value retrieves the last value written to the named uniform.
//
// Parameters:
//   - name: the uniform name
//
// Returns:
//   - any: the last written value
//   - bool: true if the uniform has been written
func (r *Recorder) Value(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Snapshot returns a copy of the current uniform state. The copy is detached from the
// recorder: later writes do not affect it. Useful for capturing per-draw state.
//
// Returns:
//   - map[string]any: copy of all uniform values written so far
func (r *Recorder) Snapshot() map[string]any {
	snap := make(map[string]any, len(r.values))
	for k, v := range r.values {
		snap[k] = v
	}
	return snap
}

func (r *Recorder) Use() {}

func (r *Recorder) SetBoolValue(name string, value bool) {
	r.values[name] = value
}

func (r *Recorder) SetIntValue(name string, value int32) {
	r.values[name] = value
}

func (r *Recorder) SetFloatValue(name string, value float32) {
	r.values[name] = value
}

func (r *Recorder) SetVec2Value(name string, value mgl32.Vec2) {
	r.values[name] = value
}

func (r *Recorder) SetVec3Value(name string, value mgl32.Vec3) {
	r.values[name] = value
}

func (r *Recorder) SetVec4Value(name string, value mgl32.Vec4) {
	r.values[name] = value
}

func (r *Recorder) SetMat4Value(name string, value mgl32.Mat4) {
	r.values[name] = value
}

func (r *Recorder) SetSampler2DValue(name string, unit int32) {
	r.values[name] = unit
}

func (r *Recorder) Release() {
	r.values = make(map[string]any)
}
