package textclean

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alnah/go-textclean/internal/fileutil"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.SubtitleCleaner  = (*pipeline.ColorParagraphCleaner)(nil)
	_ pipeline.DocumentReflower = (*pipeline.ChapterReflower)(nil)
	_ pipeline.HTMLConverter    = (*pipeline.GoldmarkConverter)(nil)
)

// subtitleOutputSuffix replaces the input extension in default output paths.
const subtitleOutputSuffix = "_clean.txt"

// SubtitleCleaner converts colored subtitle tracks into paragraphed prose.
// It is immutable after construction and safe for concurrent use.
type SubtitleCleaner struct {
	filters Filters
	cleaner pipeline.SubtitleCleaner
}

// NewSubtitleCleaner creates a SubtitleCleaner. Without options it uses
// DefaultFilters. Returns ErrInvalidFilter if a pattern does not compile,
// ErrProfileNotFound for an unknown profile.
func NewSubtitleCleaner(opts ...Option) (*SubtitleCleaner, error) {
	s := collect(opts)

	var filters Filters
	switch {
	case s.filters != nil:
		filters = *s.filters
	case s.profile != "" || s.assetPath != "":
		profile := s.profile
		if profile == "" {
			profile = DefaultProfileName
		}
		var err error
		filters, err = LoadFilters(profile, s.assetPath)
		if err != nil {
			return nil, err
		}
	default:
		filters = DefaultFilters()
	}

	phrases, err := filters.compile()
	if err != nil {
		return nil, err
	}

	return &SubtitleCleaner{
		filters: filters,
		cleaner: pipeline.NewColorParagraphCleaner(phrases),
	}, nil
}

// Filters returns the filters the cleaner was built with.
func (c *SubtitleCleaner) Filters() Filters {
	return c.filters
}

// Clean converts subtitle text to paragraphs separated by one blank line.
// Malformed entries are skipped; Clean never fails.
func (c *SubtitleCleaner) Clean(text string) string {
	return c.cleaner.CleanSubtitles(text)
}

// DefaultOutputPath returns the input path with its extension replaced
// by "_clean.txt".
func (c *SubtitleCleaner) DefaultOutputPath(inputPath string) string {
	return fileutil.ReplaceExt(inputPath, subtitleOutputSuffix)
}

// ProcessFile reads inputPath (UTF-8, or Latin-1 when it is not valid
// UTF-8), cleans it and writes the result to outputPath, or to
// DefaultOutputPath when outputPath is empty.
func (c *SubtitleCleaner) ProcessFile(inputPath, outputPath string) (*Result, error) {
	text, fallback, err := fileutil.ReadWithFallback(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if outputPath == "" {
		outputPath = c.DefaultOutputPath(inputPath)
	}

	cleaned := c.Clean(text)
	if err := writeOutput(outputPath, cleaned); err != nil {
		return nil, err
	}

	return &Result{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Text:         cleaned,
		FallbackUsed: fallback,
	}, nil
}

var defaultCleaner = sync.OnceValue(func() *SubtitleCleaner {
	c, err := NewSubtitleCleaner()
	if err != nil {
		panic("textclean: default filters do not compile: " + err.Error())
	}
	return c
})

// Clean cleans subtitle text with DefaultFilters.
func Clean(text string) string {
	return defaultCleaner().Clean(text)
}

// writeOutput writes text and classifies failures as ErrWriteOutput.
func writeOutput(path, text string) error {
	if err := fileutil.WriteFile(path, text); err != nil {
		if errors.Is(err, fileutil.ErrWrite) {
			return fmt.Errorf("%w: %s: %v", ErrWriteOutput, path, err)
		}
		return err
	}
	return nil
}
