package scene

import "github.com/Carmen-Shannon/tableau-go/common"

// ComposerOption is a function that configures a composer instance during construction.
type ComposerOption func(*composer)

// WithTextureDir is an option builder that sets the directory the scene's texture
// image files are loaded from, replacing DefaultTextureDir. An empty dir keeps the
// default.
//
// Parameters:
//   - dir: the texture directory path
//
// Returns:
//   - ComposerOption: a function that applies the texture directory option to a composer
func WithTextureDir(dir string) ComposerOption {
	return func(c *composer) {
		c.textureDir = common.Coalesce(dir, c.textureDir)
	}
}
