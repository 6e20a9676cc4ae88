package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Subdirectories and extensions of a custom asset directory.
const (
	stylesDir   = "styles"
	styleExt    = ".css"
	profilesDir = "profiles"
	profileExt  = ".yaml"
)

// FilesystemLoader reads styles and profiles from a user directory laid
// out as <base>/styles/<name>.css and <base>/profiles/<name>.yaml.
type FilesystemLoader struct {
	basePath string // absolute, symlinks resolved
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	root, err := resolveBaseDir(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{basePath: root}, nil
}

// resolveBaseDir returns the absolute, symlink-free form of dir after
// checking that it can be listed.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		return "", errors.New("empty path")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	info, err := os.Stat(abs)
	switch {
	case os.IsNotExist(err):
		return "", fmt.Errorf("directory does not exist: %s", abs)
	case err != nil:
		return "", err
	case !info.IsDir():
		return "", fmt.Errorf("not a directory: %s", abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return "", fmt.Errorf("cannot read directory: %v", err)
	}
	return abs, nil
}

// LoadStyle reads <base>/styles/<name>.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	data, err := f.load(stylesDir, name, styleExt, ErrStyleNotFound)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// LoadProfile reads and decodes <base>/profiles/<name>.yaml.
func (f *FilesystemLoader) LoadProfile(name string) (*Profile, error) {
	data, err := f.load(profilesDir, name, profileExt, ErrProfileNotFound)
	if err != nil {
		return nil, err
	}
	return parseProfile(name, data)
}

// load validates name, then reads the asset file if it stays inside the
// base directory. A missing file is reported as notFound.
func (f *FilesystemLoader) load(subdir, name, ext string, notFound error) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	path := filepath.Join(f.basePath, subdir, name+ext)
	if err := f.checkContained(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) // #nosec G304 -- containment checked above
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("%w: %q", notFound, name)
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return data, nil
}

// checkContained rejects paths that resolve, through symlinks included,
// outside the base directory. Paths that do not exist are checked as is.
func (f *FilesystemLoader) checkContained(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		abs = resolved
	}

	// Trailing separator so /base/pathevil does not pass as /base/path
	if !strings.HasPrefix(abs, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes base directory", ErrPathTraversal)
	}
	return nil
}
