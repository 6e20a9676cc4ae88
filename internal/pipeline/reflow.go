package pipeline

import (
	"regexp"
	"strings"
)

// Chapter structure patterns.
var (
	// First line that starts with a number followed by text
	firstHeadingLine = regexp.MustCompile(`(?m)^\d+[ \t]+\S`)

	// A whole line of "<number> <title words>"
	chapterHeading = regexp.MustCompile(`(?m)^\d+[ \t]+[\p{L}\p{N}_ \t]+$`)
)

// titleWindow is how many leading intro lines may form the title block.
const titleWindow = 4

// ChapterBlock is a chapter heading and the text up to the next heading.
// Heading is empty for text that precedes every heading.
type ChapterBlock struct {
	Heading string
	Content string
}

// DocumentReflower defines the contract for paragraph reflow.
type DocumentReflower interface {
	ReflowDocument(content string) string
}

// ChapterReflower reflows a title block, an intro and numbered chapters
// into one paragraph per block.
type ChapterReflower struct{}

// ReflowDocument runs every stage in order and joins the paragraphs with
// single blank lines.
func (r *ChapterReflower) ReflowDocument(content string) string {
	content = NormalizeLineEndings(content)
	intro, rest := SplitIntro(content)

	introLines := strings.Split(intro, "\n")
	paragraphs, consumed := ConsolidateTitle(introLines)
	if main := JoinLines(introLines[consumed:]); main != "" {
		paragraphs = append(paragraphs, main)
	}

	for _, chapter := range SplitChapters(rest) {
		if chapter.Heading != "" {
			paragraphs = append(paragraphs, chapter.Heading)
		}
		paragraphs = append(paragraphs, ReflowBlocks(chapter.Content)...)
	}

	return JoinParagraphs(paragraphs)
}

// SplitIntro cuts content at the first chapter-like line. Without one,
// the whole text is the intro, untrimmed, and rest is empty. Leading
// blank lines count toward the title window.
func SplitIntro(content string) (intro, rest string) {
	loc := firstHeadingLine.FindStringIndex(content)
	if loc == nil {
		return content, ""
	}
	return strings.TrimSpace(content[:loc[0]]), content[loc[0]:]
}

// ConsolidateTitle scans at most the first four lines while they are blank
// or carry no sentence punctuation. Non-blank lines accumulate into one
// title paragraph; a blank line flushes it and is kept as an empty break
// marker. Returns the paragraphs and the number of lines consumed.
func ConsolidateTitle(lines []string) (paragraphs []string, consumed int) {
	var parts []string
	flush := func() {
		if len(parts) > 0 {
			paragraphs = append(paragraphs, strings.Join(parts, " "))
			parts = nil
		}
	}

	limit := min(titleWindow, len(lines))
	for consumed < limit {
		line := strings.TrimSpace(lines[consumed])
		if line != "" && strings.ContainsAny(line, ".!?") {
			break
		}
		if line == "" {
			flush()
			paragraphs = append(paragraphs, "")
		} else {
			parts = append(parts, line)
		}
		consumed++
	}
	flush()

	return paragraphs, consumed
}

// SplitChapters splits text on heading lines, keeping each heading with
// the content that follows it. Text before the first heading becomes a
// block with an empty heading; blank text yields no blocks.
func SplitChapters(rest string) []ChapterBlock {
	if strings.TrimSpace(rest) == "" {
		return nil
	}

	locs := chapterHeading.FindAllStringIndex(rest, -1)
	var blocks []ChapterBlock

	start := len(rest)
	if len(locs) > 0 {
		start = locs[0][0]
	}
	if preamble := rest[:start]; strings.TrimSpace(preamble) != "" {
		blocks = append(blocks, ChapterBlock{Content: preamble})
	}

	for i, loc := range locs {
		end := len(rest)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		blocks = append(blocks, ChapterBlock{
			Heading: strings.TrimSpace(rest[loc[0]:loc[1]]),
			Content: rest[loc[1]:end],
		})
	}
	return blocks
}

// ReflowBlocks joins the lines of every blank-line separated block into
// one paragraph.
func ReflowBlocks(content string) []string {
	if strings.TrimSpace(content) == "" {
		return nil
	}
	var paragraphs []string
	for _, block := range SplitBlocks(content) {
		if p := JoinLines(strings.Split(block, "\n")); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

// JoinParagraphs joins paragraphs with one blank line. Empty break
// markers never widen the gap beyond one blank line.
func JoinParagraphs(paragraphs []string) string {
	kept := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
