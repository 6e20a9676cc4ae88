// Package cli implements the command-line front end shared by srtclean
// and mdreflow: flags, environment overrides, config loading, input
// discovery, batch processing, and exit codes.
package cli

import (
	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/config"
)

// Processor transforms one input file into one output file.
type Processor interface {
	ProcessFile(inputPath, outputPath string) (*textclean.Result, error)
	DefaultOutputPath(inputPath string) string
}

// Compile-time interface implementation checks.
var (
	_ Processor = (*textclean.SubtitleCleaner)(nil)
	_ Processor = (*textclean.DocumentReflower)(nil)
)

// Command describes one program built on the shared engine.
type Command struct {
	Name        string
	Summary     string
	InputKind   string   // noun used in usage and messages
	Extensions  []string // lowercase, with dot; matched when input is a directory
	UsesFilters bool     // accepts --profile and --print-filters

	// NewProcessor builds the processor for one run from the merged config.
	NewProcessor func(cfg *config.Config) (Processor, error)
}

// Subtitles is the srtclean command.
var Subtitles = Command{
	Name:        "srtclean",
	Summary:     "Convert colored subtitle tracks into paragraphed prose.",
	InputKind:   "subtitle file",
	Extensions:  []string{".srt"},
	UsesFilters: true,
	NewProcessor: func(cfg *config.Config) (Processor, error) {
		filters, err := filtersFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return textclean.NewSubtitleCleaner(textclean.WithFilters(filters))
	},
}

// Documents is the mdreflow command.
var Documents = Command{
	Name:       "mdreflow",
	Summary:    "Reflow line-wrapped documents into one paragraph per block.",
	InputKind:  "document",
	Extensions: []string{".md", ".markdown", ".txt"},
	NewProcessor: func(*config.Config) (Processor, error) {
		return textclean.NewDocumentReflower(), nil
	},
}

// filtersFromConfig loads the configured profile and applies the
// config's non-empty lists on top of it.
func filtersFromConfig(cfg *config.Config) (textclean.Filters, error) {
	profile := cfg.Filters.Profile
	if profile == "" {
		profile = textclean.DefaultProfileName
	}
	filters, err := textclean.LoadFilters(profile, cfg.Assets.BasePath)
	if err != nil {
		return textclean.Filters{}, err
	}

	return filters.Override(textclean.Filters(cfg.Filters.PhraseConfig())), nil
}
