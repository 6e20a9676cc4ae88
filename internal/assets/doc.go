// Package assets provides filter profiles and HTML preview styles.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in profiles and styles (go:embed)
//	    ├── FilesystemLoader  - custom assets from a directory on disk
//	    └── AssetResolver     - custom first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── profiles/
//	│   └── {name}.yaml   # filter profile
//	└── styles/
//	    └── {name}.css    # HTML preview stylesheet
//
// A profile is YAML with the keys description, skipPhrases, inlineStrips,
// trailer, promos and soundKeywords. Unknown keys are rejected.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
