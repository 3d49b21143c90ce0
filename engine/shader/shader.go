package shader

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

//go:embed shaders/scene.vert
var defaultVertexSource string

//go:embed shaders/scene.frag
var defaultFragmentSource string

// Shader defines the interface for a compiled shader program whose uniforms are
// addressed by name. All setters write immediately; the program retains the last
// written value for every uniform between draws, so callers are responsible for
// re-setting any uniform whose stale value would leak into the next draw.
type Shader interface {
	// Use makes this shader program the active one for subsequent draws.
	Use()

	// SetBoolValue sets a bool uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetBoolValue(name string, value bool)

	// SetIntValue sets an int uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetIntValue(name string, value int32)

	// SetFloatValue sets a float uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetFloatValue(name string, value float32)

	// SetVec2Value sets a vec2 uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetVec2Value(name string, value mgl32.Vec2)

	// SetVec3Value sets a vec3 uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetVec3Value(name string, value mgl32.Vec3)

	// SetVec4Value sets a vec4 uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetVec4Value(name string, value mgl32.Vec4)

	// SetMat4Value sets a mat4 uniform by name.
	//
	// Parameters:
	//   - name: the uniform name
	//   - value: the value to write
	SetMat4Value(name string, value mgl32.Mat4)

	// SetSampler2DValue sets a sampler2D uniform by name to the given texture unit.
	// A unit of -1 means "no texture" and is written as-is; the shader treats it as
	// an unbound sampler.
	//
	// Parameters:
	//   - name: the uniform name
	//   - unit: the texture unit index
	SetSampler2DValue(name string, unit int32)

	// Release deletes the shader program's GPU resources.
	Release()
}

// glShader is the OpenGL implementation of the Shader interface. Uniform locations
// are cached on first use to avoid repeated glGetUniformLocation calls; unknown
// uniform names resolve to location -1 and their setters are silent no-ops.
type glShader struct {
	program        uint32
	vertexSource   string
	fragmentSource string
	locations      map[string]int32
}

// Ensure glShader implements Shader interface.
var _ Shader = &glShader{}

// NewGLShader compiles and links an OpenGL shader program configured with the
// provided options. Without options the embedded still-life vertex and fragment
// sources are used. An OpenGL context must be current on the calling thread.
//
// Parameters:
//   - options: variadic list of GLShaderOption functions to configure the shader
//
// Returns:
//   - Shader: the compiled shader program
//   - error: error if compilation or linking fails
func NewGLShader(options ...GLShaderOption) (Shader, error) {
	s := &glShader{
		vertexSource:   defaultVertexSource,
		fragmentSource: defaultFragmentSource,
		locations:      make(map[string]int32),
	}
	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	vert, err := compileStage(s.vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	frag, err := compileStage(s.fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	// Stages are owned by the program after linking.
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return nil, fmt.Errorf("failed to link shader program: %v", infoLog)
	}

	s.program = program
	return s, nil
}

// compileStage compiles a single shader stage and returns its handle.
func compileStage(source string, stage uint32) (uint32, error) {
	handle := gl.CreateShader(stage)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(handle)
		return 0, fmt.Errorf("failed to compile: %v", infoLog)
	}

	return handle, nil
}

// location returns the cached uniform location for name, querying and caching it on
// first use. Unknown names cache as -1.
func (s *glShader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *glShader) Use() {
	gl.UseProgram(s.program)
}

func (s *glShader) SetBoolValue(name string, value bool) {
	if loc := s.location(name); loc != -1 {
		var v int32
		if value {
			v = 1
		}
		gl.Uniform1i(loc, v)
	}
}

func (s *glShader) SetIntValue(name string, value int32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (s *glShader) SetFloatValue(name string, value float32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (s *glShader) SetVec2Value(name string, value mgl32.Vec2) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform2f(loc, value.X(), value.Y())
	}
}

func (s *glShader) SetVec3Value(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (s *glShader) SetVec4Value(name string, value mgl32.Vec4) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (s *glShader) SetMat4Value(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *glShader) SetSampler2DValue(name string, unit int32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1i(loc, unit)
	}
}

func (s *glShader) Release() {
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
	s.locations = make(map[string]int32)
}
