// Package config loads the optional YAML configuration shared by the
// srtclean and mdreflow commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/fileutil"
	"github.com/alnah/go-textclean/internal/pipeline"
	"github.com/alnah/go-textclean/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-textclean"

// Field limits.
const (
	MaxPathLength    = 4096 // filesystem paths
	MaxPatternLength = 2048 // one phrase pattern
	MaxPatterns      = 256  // entries per pattern list
	MaxKeywordLength = 100  // one sound keyword
	MaxWorkers       = 32   // explicit worker count
)

// Config holds all configuration for both commands.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Assets  AssetsConfig  `yaml:"assets"`
	Workers int           `yaml:"workers"` // 0 = auto
	HTML    HTMLConfig    `yaml:"html"`
	Filters FiltersConfig `yaml:"filters"`

	// Source is the file the config was loaded from (empty for defaults).
	Source string `yaml:"-"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // used when no input argument is given
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // empty = next to the input
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // empty = embedded assets only
}

// HTMLConfig defines the HTML preview options.
type HTMLConfig struct {
	Enabled bool   `yaml:"enabled"`
	Style   string `yaml:"style"` // style name or CSS file path
}

// FiltersConfig selects a filter profile and optionally replaces parts of it.
// A non-empty list replaces the profile's list of the same name.
type FiltersConfig struct {
	Profile       string             `yaml:"profile"`
	SkipPhrases   []string           `yaml:"skipPhrases"`
	InlineStrips  []pipeline.Rewrite `yaml:"inlineStrips"`
	Trailer       string             `yaml:"trailer"`
	Promos        []pipeline.Rewrite `yaml:"promos"`
	SoundKeywords []string           `yaml:"soundKeywords"`
}

// PhraseConfig returns the override lists in pipeline form.
func (f FiltersConfig) PhraseConfig() pipeline.PhraseConfig {
	return pipeline.PhraseConfig{
		SkipPhrases:   f.SkipPhrases,
		InlineStrips:  f.InlineStrips,
		Trailer:       f.Trailer,
		Promos:        f.Promos,
		SoundKeywords: f.SoundKeywords,
	}
}

// Validate checks ranges, field lengths, the profile name, and that every
// override pattern compiles. Called by LoadConfig, and again by the CLI
// after environment overrides are applied.
func (c *Config) Validate() error {
	paths := []struct{ field, value string }{
		{"input.defaultDir", c.Input.DefaultDir},
		{"output.defaultDir", c.Output.DefaultDir},
		{"assets.basePath", c.Assets.BasePath},
		{"html.style", c.HTML.Style},
	}
	for _, p := range paths {
		if err := validateFieldLength(p.field, p.value, MaxPathLength); err != nil {
			return err
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers: must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return c.Filters.validate()
}

func (f FiltersConfig) validate() error {
	if f.Profile != "" {
		if err := assets.ValidateAssetName(f.Profile); err != nil {
			return fmt.Errorf("%w: filters.profile: %v", ErrInvalidValue, err)
		}
	}

	lists := []struct {
		field string
		n     int
	}{
		{"filters.skipPhrases", len(f.SkipPhrases)},
		{"filters.inlineStrips", len(f.InlineStrips)},
		{"filters.promos", len(f.Promos)},
		{"filters.soundKeywords", len(f.SoundKeywords)},
	}
	for _, l := range lists {
		if l.n > MaxPatterns {
			return fmt.Errorf("%w: %s: %d entries (max %d)", ErrInvalidValue, l.field, l.n, MaxPatterns)
		}
	}

	for i, p := range f.SkipPhrases {
		if err := validateFieldLength(fmt.Sprintf("filters.skipPhrases[%d]", i), p, MaxPatternLength); err != nil {
			return err
		}
	}
	for i, r := range f.InlineStrips {
		if err := validateFieldLength(fmt.Sprintf("filters.inlineStrips[%d].pattern", i), r.Pattern, MaxPatternLength); err != nil {
			return err
		}
	}
	for i, r := range f.Promos {
		if err := validateFieldLength(fmt.Sprintf("filters.promos[%d].pattern", i), r.Pattern, MaxPatternLength); err != nil {
			return err
		}
	}
	if err := validateFieldLength("filters.trailer", f.Trailer, MaxPatternLength); err != nil {
		return err
	}
	for i, kw := range f.SoundKeywords {
		if err := validateFieldLength(fmt.Sprintf("filters.soundKeywords[%d]", i), kw, MaxKeywordLength); err != nil {
			return err
		}
	}

	if _, err := pipeline.CompilePhraseSet(f.PhraseConfig()); err != nil {
		return fmt.Errorf("filters: %w", err)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// default profile, auto workers, no HTML preview.
func DefaultConfig() *Config {
	return &Config{
		HTML:    HTMLConfig{Style: assets.DefaultStyleName},
		Filters: FiltersConfig{Profile: assets.DefaultProfileName},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig value; an empty file
// yields the defaults. Returns error if the file is not found.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("reading config file: %w", err)
		case errors.Is(err, yamlutil.ErrEmptyInput):
			// defaults apply
		default:
			return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
		}
	}
	cfg.Source = configPath

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists, in order, the files LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
// Tries the current directory, then the user config directory, .yaml before .yml.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
