// Package fileutil provides file reading, writing and path helpers.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Sentinel errors for file utility operations.
var (
	ErrUnreadable  = errors.New("cannot read file")
	ErrInvalidUTF8 = errors.New("file is not valid UTF-8")
	ErrWrite       = errors.New("cannot write file")
)

// Permissions for created directories and files.
const (
	dirPerm  = 0o750
	filePerm = 0o644
)

// ReadUTF8 reads a whole file and requires it to be valid UTF-8.
func ReadUTF8(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user input by design
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrInvalidUTF8, path)
	}
	return string(data), nil
}

// ReadWithFallback reads a whole file as UTF-8, decoding it as Latin-1
// when it is not valid UTF-8. fallback reports whether Latin-1 was used.
func ReadWithFallback(path string) (text string, fallback bool, err error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path is user input by design
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	if utf8.Valid(data) {
		return string(data), false, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", false, fmt.Errorf("%w: latin-1: %w", ErrUnreadable, err)
	}
	return string(decoded), true, nil
}

// WriteFile writes content to path, creating parent directories.
// Content goes to a temp file in the target directory first and is renamed
// into place, so a failed write never leaves a partial file behind.
func WriteFile(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: creating directory: %w", ErrWrite, err)
	}

	tmp, err := os.CreateTemp(dir, ".textclean-*")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		cleanup()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Chmod(tmpPath, filePerm); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// SplitExt splits path into base and extension. Leading dots of the file
// name do not start an extension, so ".profile" has none.
func SplitExt(path string) (base, ext string) {
	name := filepath.Base(path)
	trimmed := strings.TrimLeft(name, ".")
	i := strings.LastIndex(trimmed, ".")
	if i < 0 {
		return path, ""
	}
	ext = trimmed[i:]
	return path[:len(path)-len(ext)], ext
}

// ReplaceExt drops the extension of path and appends suffix.
//
// Examples:
//   - ("talk.srt", "_clean.txt") -> "talk_clean.txt"
//   - ("dir/talk", "_clean.txt") -> "dir/talk_clean.txt"
func ReplaceExt(path, suffix string) string {
	base, _ := SplitExt(path)
	return base + suffix
}

// InsertBeforeExt inserts suffix between the base and the extension of path.
//
// Examples:
//   - ("book.md", "_clean") -> "book_clean.md"
//   - ("notes", "_clean") -> "notes_clean"
func InsertBeforeExt(path, suffix string) string {
	base, ext := SplitExt(path)
	return base + suffix + ext
}

// HasStemSuffix reports whether the file name without extension ends with suffix.
func HasStemSuffix(path, suffix string) bool {
	base, _ := SplitExt(filepath.Base(path))
	return strings.HasSuffix(base, suffix)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "nl-podwalk" -> false (name)
//   - "./custom.yaml" -> true (relative path)
//   - "/absolute/style.css" -> true (absolute)
//   - "C:\profiles\nl.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
