package pipeline

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

// Caption structure patterns (one tag dialect: <font color="...">).
var (
	// A closing tag directly followed by a new opening tag
	splitFontTags = regexp.MustCompile(`</font><font color="([^"]+)">`)

	// An entry whose caption is one tag span holding one parenthesized phrase
	soundCueCaption = regexp.MustCompile(`^<font color="[^"]+">(\([^)]+\))</font>$`)

	// A colored span with literal text and no nested tags
	fontSpan = regexp.MustCompile(`<font color="([^"]+)">([^<]+)</font>`)
)

// Paragraph punctuation repair patterns. They need lookarounds, hence regexp2.
var (
	ellipsisGap     = regexp2.MustCompile(`\.\.\.\s+`, regexp2.None)
	ellipsisSpacing = regexp2.MustCompile(`\s*\.\.\.\s*`, regexp2.None)
	periodCapital   = regexp2.MustCompile(`\.(?=[A-Z])`, regexp2.None)
	commaNoSpace    = regexp2.MustCompile(`,(?=\S)`, regexp2.None)
	markCapital     = regexp2.MustCompile(`([?!])(?=[A-Z])`, regexp2.None)
	bareDoubleDot   = regexp2.MustCompile(`(?<!\.)\.\.(?=[^.])`, regexp2.None)
)

// Whole-text cleanup patterns.
var (
	spaceRun     = regexp2.MustCompile(` {2,}`, regexp2.None)
	trailingDots = regexp2.MustCompile(`\.\s*\.\s*$`, regexp2.None)
)

// minParagraphRunes is the shortest paragraph kept after merging.
const minParagraphRunes = 3

// SubtitleEntry is one blank-line delimited block of a subtitle track:
// index line, timestamp line, then caption lines.
type SubtitleEntry struct {
	Raw   string
	Lines []string
}

// WellFormed reports whether the entry has at least one caption line.
func (e SubtitleEntry) WellFormed() bool {
	return len(e.Lines) >= 3
}

// Caption joins the caption lines (third line onward) with spaces.
func (e SubtitleEntry) Caption() string {
	if !e.WellFormed() {
		return ""
	}
	return strings.Join(e.Lines[2:], " ")
}

// Chunk is the text of one colored caption span.
type Chunk struct {
	Color string
	Text  string
}

// SubtitleCleaner defines the contract for subtitle-to-prose cleaning.
type SubtitleCleaner interface {
	CleanSubtitles(content string) string
}

// ColorParagraphCleaner turns a colored subtitle track into paragraphs,
// one per run of same-colored captions.
type ColorParagraphCleaner struct {
	phrases *PhraseSet
}

// NewColorParagraphCleaner creates a cleaner using the given phrase set.
// A nil set disables all corpus-specific filtering.
func NewColorParagraphCleaner(phrases *PhraseSet) *ColorParagraphCleaner {
	if phrases == nil {
		phrases = &PhraseSet{}
	}
	return &ColorParagraphCleaner{phrases: phrases}
}

// CleanSubtitles runs every stage in order. Stage order matters: tag
// repair must precede chunk extraction, and merging must precede the
// per-paragraph punctuation fixes.
func (c *ColorParagraphCleaner) CleanSubtitles(content string) string {
	content = NormalizeLineEndings(content)
	content = MergeSplitTags(content)
	entries := DropSoundCueEntries(SegmentEntries(content))
	chunks := c.ExtractChunks(entries)
	paragraphs := MergeContinuations(GroupByColor(chunks))
	return c.Finalize(c.NormalizeParagraphs(paragraphs))
}

// MergeSplitTags collapses "</font><font color=...>" into one space so a
// phrase split over two spans reads as one.
func MergeSplitTags(content string) string {
	return splitFontTags.ReplaceAllString(content, " ")
}

// SegmentEntries splits content on blank-line runs.
func SegmentEntries(content string) []SubtitleEntry {
	blocks := SplitBlocks(content)
	entries := make([]SubtitleEntry, 0, len(blocks))
	for _, block := range blocks {
		entries = append(entries, SubtitleEntry{
			Raw:   block,
			Lines: strings.Split(strings.TrimSpace(block), "\n"),
		})
	}
	return entries
}

// DropSoundCueEntries removes entries whose whole caption is a single
// parenthesized span. Malformed entries pass through.
func DropSoundCueEntries(entries []SubtitleEntry) []SubtitleEntry {
	kept := make([]SubtitleEntry, 0, len(entries))
	for _, e := range entries {
		if e.WellFormed() && soundCueCaption.MatchString(e.Caption()) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// ExtractChunks collects colored spans in entry order, then left to right.
// Malformed entries contribute nothing.
func (c *ColorParagraphCleaner) ExtractChunks(entries []SubtitleEntry) []Chunk {
	var chunks []Chunk
	for _, e := range entries {
		if !e.WellFormed() {
			continue
		}
		for _, m := range fontSpan.FindAllStringSubmatch(e.Caption(), -1) {
			color, text := m[1], m[2]
			if IsSoundCue(text) || c.phrases.Skips(text) {
				continue
			}
			chunks = append(chunks, Chunk{Color: color, Text: text})
		}
	}
	return chunks
}

// IsSoundCue reports whether a span reads as a sound description:
// no lowercase letters at all, or an opening parenthesis.
func IsSoundCue(text string) bool {
	return !hasLowerASCII(text) || strings.HasPrefix(text, "(")
}

// GroupByColor joins consecutive same-colored chunks into paragraphs.
func GroupByColor(chunks []Chunk) []string {
	var paragraphs []string
	var current []string
	var currentColor string

	for i, ch := range chunks {
		if i > 0 && ch.Color != currentColor {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = nil
		}
		current = append(current, ch.Text)
		currentColor = ch.Color
	}
	if len(current) > 0 {
		paragraphs = append(paragraphs, strings.Join(current, " "))
	}
	return paragraphs
}

// MergeContinuations joins a paragraph with the next one when the first
// ends mid-sentence and the second picks the sentence up. One lookahead
// only: a merged pair is never merged again in the same pass.
func MergeContinuations(paragraphs []string) []string {
	merged := make([]string, 0, len(paragraphs))
	for i := 0; i < len(paragraphs); i++ {
		current := paragraphs[i]
		if i+1 < len(paragraphs) && EndsIncomplete(current) && StartsContinuation(paragraphs[i+1]) {
			merged = append(merged, current+" "+paragraphs[i+1])
			i++
			continue
		}
		merged = append(merged, current)
	}
	return merged
}

// EndsIncomplete reports whether a paragraph trails off: no terminal
// punctuation, a trailing ellipsis, or a trailing lowercase letter.
func EndsIncomplete(paragraph string) bool {
	trimmed := strings.TrimRightFunc(paragraph, unicode.IsSpace)
	if trimmed == "" {
		return true
	}
	if strings.HasSuffix(trimmed, "...") {
		return true
	}
	return !strings.ContainsRune(".!?", rune(trimmed[len(trimmed)-1]))
}

// StartsContinuation reports whether a paragraph begins lowercase or
// with an ellipsis.
func StartsContinuation(paragraph string) bool {
	lead := strings.TrimLeftFunc(paragraph, unicode.IsSpace)
	if lead != "" && isLowerASCII(lead[0]) {
		return true
	}
	return strings.HasPrefix(strings.TrimSpace(paragraph), "...")
}

// NormalizeParagraphs repairs spacing and punctuation in each paragraph
// and drops the ones too short or emptied by phrase stripping.
func (c *ColorParagraphCleaner) NormalizeParagraphs(paragraphs []string) []string {
	out := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		if utf8.RuneCountInString(strings.TrimSpace(p)) < minParagraphRunes {
			continue
		}
		p = NormalizePunctuation(p)
		p = c.phrases.StripInline(p)
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// NormalizePunctuation applies the subtitle punctuation repairs:
// ellipses used as line breaks become spaces, the remaining ones get one
// trailing space, whitespace collapses, and missing spaces after
// sentence marks and commas are inserted.
func NormalizePunctuation(p string) string {
	p = replaceAll(ellipsisGap, p, " ")
	p = replaceAll(ellipsisSpacing, p, "... ")
	p = CollapseWhitespace(p)
	p = replaceAll(periodCapital, p, ". ")
	p = replaceAll(commaNoSpace, p, ", ")
	p = replaceAll(markCapital, p, "$1 ")
	return replaceAll(bareDoubleDot, p, "...")
}

// Finalize joins paragraphs with blank lines and strips boilerplate
// from the whole text.
func (c *ColorParagraphCleaner) Finalize(paragraphs []string) string {
	text := strings.Join(paragraphs, "\n\n")
	text = c.phrases.StripTrailer(text)
	text = c.phrases.StripPromos(text)
	text = replaceAll(spaceRun, text, " ")
	text = c.phrases.StripSoundAsides(text)
	return replaceAll(trailingDots, text, ".")
}

func hasLowerASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if isLowerASCII(s[i]) {
			return true
		}
	}
	return false
}

func isLowerASCII(b byte) bool {
	return b >= 'a' && b <= 'z'
}
