package textclean

import (
	"errors"
	"fmt"

	"github.com/alnah/go-textclean/internal/fileutil"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// reflowOutputSuffix is inserted before the extension in default output paths.
const reflowOutputSuffix = "_clean"

// DocumentReflower reflows line-wrapped documents into paragraphs.
type DocumentReflower struct {
	reflower pipeline.DocumentReflower
}

// NewDocumentReflower creates a DocumentReflower.
func NewDocumentReflower() *DocumentReflower {
	return &DocumentReflower{reflower: &pipeline.ChapterReflower{}}
}

// Reflow returns text with a title block, one intro paragraph, chapter
// headings and one paragraph per blank-line separated block.
func (r *DocumentReflower) Reflow(text string) string {
	return r.reflower.ReflowDocument(text)
}

// DefaultOutputPath inserts "_clean" before the extension of inputPath.
func (r *DocumentReflower) DefaultOutputPath(inputPath string) string {
	return fileutil.InsertBeforeExt(inputPath, reflowOutputSuffix)
}

// ProcessFile reads inputPath as UTF-8, reflows it and writes the result to
// outputPath, or to DefaultOutputPath when outputPath is empty. Input that
// is not valid UTF-8 fails with ErrDecode; nothing is written.
func (r *DocumentReflower) ProcessFile(inputPath, outputPath string) (*Result, error) {
	text, err := fileutil.ReadUTF8(inputPath)
	if err != nil {
		if errors.Is(err, fileutil.ErrInvalidUTF8) {
			return nil, fmt.Errorf("%w: %s", ErrDecode, inputPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	if outputPath == "" {
		outputPath = r.DefaultOutputPath(inputPath)
	}

	reflowed := r.Reflow(text)
	if err := writeOutput(outputPath, reflowed); err != nil {
		return nil, err
	}

	return &Result{InputPath: inputPath, OutputPath: outputPath, Text: reflowed}, nil
}

// Reflow reflows document text.
func Reflow(text string) string {
	return NewDocumentReflower().Reflow(text)
}
