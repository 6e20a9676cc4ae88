package cli

import (
	"errors"
	"os"

	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/config"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// Exit codes for srtclean and mdreflow.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // All files written
	ExitGeneral = 1 // General error, missing input argument, failed batch files
	ExitUsage   = 2 // Invalid flags, config, filters, or assets
	ExitIO      = 3 // Input not found or undecodable, output not writable
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Missing input argument (exit 1, usage already printed)
	if errors.Is(err, ErrNoInput) {
		return ExitGeneral
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, textclean.ErrNotFound) ||
		errors.Is(err, textclean.ErrDecode) ||
		errors.Is(err, textclean.ErrWriteOutput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, textclean.ErrInvalidFilter) ||
		errors.Is(err, pipeline.ErrInvalidPattern) ||
		errors.Is(err, textclean.ErrInvalidProfile) ||
		errors.Is(err, textclean.ErrProfileNotFound) ||
		errors.Is(err, textclean.ErrStyleNotFound) ||
		errors.Is(err, textclean.ErrInvalidAssetPath) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrInvalidFlag) {
		return ExitUsage
	}

	return ExitGeneral
}
