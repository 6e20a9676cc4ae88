package assets

import "errors"

// Sentinel errors for asset lookup.
var (
	ErrStyleNotFound    = errors.New("style not found")
	ErrProfileNotFound  = errors.New("profile not found")
	ErrInvalidProfile   = errors.New("invalid profile") // YAML that does not decode into a Profile
	ErrInvalidAssetName = errors.New("invalid asset name")
	ErrInvalidBasePath  = errors.New("invalid base path")
	ErrAssetRead        = errors.New("failed to read asset")
	ErrPathTraversal    = errors.New("path traversal detected")
)
