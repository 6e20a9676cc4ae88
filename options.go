package textclean

// Option configures a SubtitleCleaner or an HTMLRenderer.
type Option func(*settings)

// settings collects option values before construction.
type settings struct {
	filters   *Filters
	profile   string
	assetPath string
	style     string
}

// WithFilters sets the subtitle filters directly. It takes precedence
// over WithProfile.
func WithFilters(f Filters) Option {
	return func(s *settings) {
		s.filters = &f
	}
}

// WithProfile selects a filter profile by name ("nl-podwalk", "none", or
// a custom profile under the asset path).
func WithProfile(name string) Option {
	return func(s *settings) {
		s.profile = name
	}
}

// WithAssetPath sets a directory searched for profiles and styles before
// the embedded ones.
func WithAssetPath(path string) Option {
	return func(s *settings) {
		s.assetPath = path
	}
}

// WithStyle sets the HTML preview stylesheet: a style name or a CSS file path.
func WithStyle(nameOrPath string) Option {
	return func(s *settings) {
		s.style = nameOrPath
	}
}

func collect(opts []Option) *settings {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
