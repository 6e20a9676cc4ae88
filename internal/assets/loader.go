package assets

// AssetLoader defines the contract for loading profiles and styles.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadProfile loads a filter profile by name (without .yaml extension).
	// Returns ErrProfileNotFound if the profile doesn't exist and
	// ErrInvalidProfile if it cannot be decoded.
	LoadProfile(name string) (*Profile, error)
}
