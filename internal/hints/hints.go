// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config with a path, or creating a file in the user config dir.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(filepathSlash(p), "/go-textclean/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForInputNotFound returns a hint for missing input paths.
func ForInputNotFound() string {
	return format("check the path; a directory is processed file by file")
}

// ForDecode returns a hint for input files that are not valid UTF-8.
func ForDecode() string {
	return format("re-save the file as UTF-8")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForInvalidPattern returns a hint for phrase patterns that fail to compile.
func ForInvalidPattern() string {
	return format("patterns support lookarounds and (?i)/(?s)/(?m); quote them with single quotes in YAML")
}

// ForProfileNotFound returns hints for unknown filter profiles.
func ForProfileNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return formatHints([]string{
		"available: " + strings.Join(available, ", "),
		"custom profiles live in <asset-path>/profiles/<name>.yaml",
	})
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// filepathSlash normalizes Windows separators for substring checks.
func filepathSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
