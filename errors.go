package textclean

import (
	"errors"

	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	// ErrNotFound indicates the input path does not exist or cannot be read.
	ErrNotFound = errors.New("input not found")

	// ErrDecode indicates the input is not valid UTF-8 and no fallback applies.
	ErrDecode = errors.New("input is not valid UTF-8")

	// ErrWriteOutput indicates the output file could not be written.
	ErrWriteOutput = errors.New("cannot write output")

	// ErrInvalidFilter indicates a filter pattern failed to compile.
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidAssetPath indicates the custom asset directory is unusable.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// ErrHTMLConversion indicates HTML preview rendering failed.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Asset lookup errors.
	ErrProfileNotFound = assets.ErrProfileNotFound
	ErrInvalidProfile  = assets.ErrInvalidProfile
	ErrStyleNotFound   = assets.ErrStyleNotFound
)
