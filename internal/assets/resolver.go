package assets

import (
	"errors"
)

// AssetResolver combines custom and embedded loaders with fallback logic.
// When a custom loader is configured, it tries custom first, then falls back
// to embedded if the asset is not found in the custom location.
type AssetResolver struct {
	custom   AssetLoader // nil if no custom path configured
	embedded *EmbeddedLoader
}

// NewAssetResolver creates an AssetResolver.
// If customBasePath is empty, only embedded assets are used.
// Returns error if customBasePath is set but invalid.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	resolver := &AssetResolver{
		embedded: NewEmbeddedLoader(),
	}

	if customBasePath != "" {
		fsLoader, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		resolver.custom = fsLoader
	}

	return resolver, nil
}

// LoadStyle loads a CSS style, trying the custom loader first if available.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return withFallback(r, func(l AssetLoader) (string, error) {
		return l.LoadStyle(name)
	})
}

// LoadProfile loads a filter profile, trying the custom loader first if available.
func (r *AssetResolver) LoadProfile(name string) (*Profile, error) {
	return withFallback(r, func(l AssetLoader) (*Profile, error) {
		return l.LoadProfile(name)
	})
}

// ProfileNames lists the embedded profile names.
func (r *AssetResolver) ProfileNames() []string {
	return r.embedded.ProfileNames()
}

// StyleNames lists the embedded style names.
func (r *AssetResolver) StyleNames() []string {
	return r.embedded.StyleNames()
}

// withFallback implements the custom-first, fallback-to-embedded logic.
// Only "not found" errors fall through; validation, decode and I/O errors
// from the custom location are returned as is.
func withFallback[T any](r *AssetResolver, load func(AssetLoader) (T, error)) (T, error) {
	if r.custom == nil {
		return load(r.embedded)
	}

	v, err := load(r.custom)
	if err == nil {
		return v, nil
	}
	if !isNotFoundError(err) {
		var zero T
		return zero, err
	}
	return load(r.embedded)
}

// isNotFoundError checks if the error indicates the asset was not found.
func isNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound) || errors.Is(err, ErrProfileNotFound)
}

// Compile-time interface check.
var _ AssetLoader = (*AssetResolver)(nil)
