package pipeline

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"
)

// Precompiled regex patterns shared by both pipelines.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A run of blank lines (whitespace-only lines count as blank)
	blankLineRun = regexp.MustCompile(`\n\s*\n+`)

	// Any whitespace run, Unicode aware
	whitespaceRun = regexp2.MustCompile(`\s+`, regexp2.None)
)

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitBlocks splits content on runs of blank lines.
func SplitBlocks(content string) []string {
	return blankLineRun.Split(content, -1)
}

// CollapseWhitespace replaces every whitespace run with a single space
// and trims both ends. Text that already uses single spaces is unchanged.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(replaceAll(whitespaceRun, s, " "))
}

// JoinLines trims each line, drops blank ones and joins the rest with
// single spaces.
func JoinLines(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// replaceAll applies a regexp2 replacement to every match.
// regexp2 only fails on a match timeout; the input is then returned
// unchanged.
func replaceAll(re *regexp2.Regexp, s, replacement string) string {
	out, err := re.Replace(s, replacement, -1, -1)
	if err != nil {
		return s
	}
	return out
}

// matchString reports whether re matches anywhere in s.
func matchString(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}
