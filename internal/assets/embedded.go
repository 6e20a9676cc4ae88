package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed styles/*.css
var styles embed.FS

//go:embed profiles/*.yaml
var profiles embed.FS

// EmbeddedLoader loads assets from the embedded filesystem.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyle loads a CSS style from embedded assets by name.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := styles.ReadFile(stylesDir + "/" + name + styleExt)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(content), nil
}

// LoadProfile loads and decodes an embedded filter profile by name.
func (e *EmbeddedLoader) LoadProfile(name string) (*Profile, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}

	data, err := profiles.ReadFile(profilesDir + "/" + name + profileExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return parseProfile(name, data)
}

// StyleNames lists the embedded style names, sorted.
func (e *EmbeddedLoader) StyleNames() []string {
	return listNames(styles, stylesDir, styleExt)
}

// ProfileNames lists the embedded profile names, sorted.
func (e *EmbeddedLoader) ProfileNames() []string {
	return listNames(profiles, profilesDir, profileExt)
}

func listNames(fsys fs.FS, dir, ext string) []string {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ext); ok && !entry.IsDir() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Compile-time interface check.
var _ AssetLoader = (*EmbeddedLoader)(nil)
