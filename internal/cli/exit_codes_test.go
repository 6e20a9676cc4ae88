package cli

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config, and cli
//   packages, plus wrapped errors to verify the errors.Is() chain.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/config"
	"github.com/alnah/go-textclean/internal/pipeline"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// General errors (exit 1)
		{"no input", ErrNoInput, ExitGeneral},
		{"files failed", fmt.Errorf("%w: 1 of 2", ErrFilesFailed), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"not found", textclean.ErrNotFound, ExitIO},
		{"decode", textclean.ErrDecode, ExitIO},
		{"write output", textclean.ErrWriteOutput, ExitIO},
		{"no files", ErrNoFiles, ExitIO},
		{"wrapped decode", fmt.Errorf("reading: %w", textclean.ErrDecode), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid value", config.ErrInvalidValue, ExitUsage},
		{"invalid filter", textclean.ErrInvalidFilter, ExitUsage},
		{"invalid pattern", fmt.Errorf("filters: %w", pipeline.ErrInvalidPattern), ExitUsage},
		{"invalid profile", textclean.ErrInvalidProfile, ExitUsage},
		{"profile not found", textclean.ErrProfileNotFound, ExitUsage},
		{"style not found", textclean.ErrStyleNotFound, ExitUsage},
		{"invalid asset path", textclean.ErrInvalidAssetPath, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"too many args", ErrTooManyArgs, ExitUsage},
		{"invalid flag", ErrInvalidFlag, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading: %w", config.ErrConfigParse), ExitUsage},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	codes := []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO}
	seen := make(map[int]bool)
	for _, c := range codes {
		if c < 0 || c >= 126 {
			t.Errorf("exit code %d outside 0..125", c)
		}
		if seen[c] {
			t.Errorf("duplicate exit code %d", c)
		}
		seen[c] = true
	}
	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes must follow Unix conventions (0=success, 1=general, 2=usage)")
	}
}
