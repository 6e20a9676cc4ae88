package cli

import (
	"errors"

	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/hints"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoFiles            = errors.New("no matching files found")
	ErrTooManyArgs        = errors.New("too many arguments")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrFilesFailed        = errors.New("some files failed")
)

// hintFor returns an actionable hint for err, or "".
// Config lookup hints are attached where the config name is known.
func hintFor(err error) string {
	switch {
	case errors.Is(err, textclean.ErrDecode):
		return hints.ForDecode()
	case errors.Is(err, textclean.ErrNotFound):
		return hints.ForInputNotFound()
	case errors.Is(err, textclean.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, pipeline.ErrInvalidPattern):
		return hints.ForInvalidPattern()
	case errors.Is(err, textclean.ErrProfileNotFound):
		return hints.ForProfileNotFound(textclean.ProfileNames())
	case errors.Is(err, textclean.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.NewEmbeddedLoader().StyleNames())
	}
	return ""
}
