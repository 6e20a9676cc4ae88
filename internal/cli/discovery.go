package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	textclean "github.com/alnah/go-textclean"
	"github.com/alnah/go-textclean/internal/config"
	"github.com/alnah/go-textclean/internal/fileutil"
)

// outputStemSuffix marks files written by a previous run.
const outputStemSuffix = "_clean"

// FileToProcess pairs one input with its output path.
type FileToProcess struct {
	InputPath  string
	OutputPath string
}

// discoverFiles lists the files to process.
//
// A single file is processed regardless of extension; its output is
// outputFile when set, else the processor's default path, moved into
// outputDir when that is set. A directory is walked for cmd's extensions,
// skipping earlier outputs; outputFile, else outputDir, mirrors its tree.
func discoverFiles(cmd Command, proc Processor, inputPath, outputFile, outputDir string) ([]FileToProcess, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textclean.ErrNotFound, err)
	}

	if !info.IsDir() {
		out := outputFile
		if out == "" {
			out = resolveOutputPath(proc, inputPath, outputDir, "")
		}
		return []FileToProcess{{InputPath: inputPath, OutputPath: out}}, nil
	}

	if outputFile != "" {
		outputDir = outputFile
	}

	var files []FileToProcess
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !matchesExtension(cmd, path) || fileutil.HasStemSuffix(path, outputStemSuffix) {
			return nil
		}
		files = append(files, FileToProcess{
			InputPath:  path,
			OutputPath: resolveOutputPath(proc, path, outputDir, inputPath),
		})
		return nil
	})
	return files, err
}

// resolveOutputPath places the processor's default output name under
// outputDir, keeping the path relative to baseInputDir when given.
func resolveOutputPath(proc Processor, inputPath, outputDir, baseInputDir string) string {
	defaultPath := proc.DefaultOutputPath(inputPath)
	if outputDir == "" {
		return defaultPath
	}

	name := filepath.Base(defaultPath)
	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}
	return filepath.Join(outputDir, name)
}

// matchesExtension reports whether path has one of cmd's extensions.
func matchesExtension(cmd Command, path string) bool {
	return slices.Contains(cmd.Extensions, strings.ToLower(filepath.Ext(path)))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > config.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, config.MaxWorkers)
	}
	return nil
}
