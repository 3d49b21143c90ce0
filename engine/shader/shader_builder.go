package shader

import (
	"fmt"
	"os"
)

// GLShaderOption is a function that configures a glShader instance during construction.
// Options that read from the filesystem return an error if the read fails.
type GLShaderOption func(*glShader) error

// WithVertexSource is an option builder that sets the vertex shader GLSL source,
// replacing the embedded default.
//
// Parameters:
//   - source: the GLSL vertex shader source
//
// Returns:
//   - GLShaderOption: a function that applies the vertex source option to a glShader
func WithVertexSource(source string) GLShaderOption {
	return func(s *glShader) error {
		s.vertexSource = source
		return nil
	}
}

// WithFragmentSource is an option builder that sets the fragment shader GLSL source,
// replacing the embedded default.
//
// Parameters:
//   - source: the GLSL fragment shader source
//
// Returns:
//   - GLShaderOption: a function that applies the fragment source option to a glShader
func WithFragmentSource(source string) GLShaderOption {
	return func(s *glShader) error {
		s.fragmentSource = source
		return nil
	}
}

// WithVertexFile is an option builder that loads the vertex shader GLSL source from
// the given file, replacing the embedded default.
//
// Parameters:
//   - path: filesystem path of the vertex shader source
//
// Returns:
//   - GLShaderOption: a function that applies the vertex file option to a glShader
func WithVertexFile(path string) GLShaderOption {
	return func(s *glShader) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read vertex shader %s: %w", path, err)
		}
		s.vertexSource = string(source)
		return nil
	}
}

// WithFragmentFile is an option builder that loads the fragment shader GLSL source
// from the given file, replacing the embedded default.
//
// Parameters:
//   - path: filesystem path of the fragment shader source
//
// Returns:
//   - GLShaderOption: a function that applies the fragment file option to a glShader
func WithFragmentFile(path string) GLShaderOption {
	return func(s *glShader) error {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read fragment shader %s: %w", path, err)
		}
		s.fragmentSource = string(source)
		return nil
	}
}
