package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DirLoader loads assets from a base directory, falling back to embedded
// defaults when a name is not found on disk. Implements AssetLoader.
//
// Directory layout:
//
//	<base>/styles/{name}.css
//	<base>/templates/{name}.html
type DirLoader struct {
	base     string
	fallback *EmbeddedLoader
}

// NewDirLoader creates a DirLoader rooted at base.
// Returns ErrInvalidBasePath if base is not a readable directory.
func NewDirLoader(base string) (*DirLoader, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrInvalidBasePath, base)
	}

	return &DirLoader{base: base, fallback: NewEmbeddedLoader()}, nil
}

// LoadStyle loads styles/{name}.css from the base directory, falling back
// to the embedded style of the same name.
func (d *DirLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.base, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated, base user-configured
	if err == nil {
		return string(content), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading style %q: %w", path, err)
	}

	return d.fallback.LoadStyle(name)
}

// LoadTemplate loads templates/{name}.html from the base directory, falling
// back to the embedded template of the same name.
func (d *DirLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(d.base, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name validated, base user-configured
	if err == nil {
		return string(content), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("reading template %q: %w", path, err)
	}

	return d.fallback.LoadTemplate(name)
}

// Compile-time interface check.
var _ AssetLoader = (*DirLoader)(nil)
