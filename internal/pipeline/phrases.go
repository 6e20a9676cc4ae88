package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// ErrInvalidPattern indicates a phrase pattern failed to compile.
var ErrInvalidPattern = errors.New("invalid phrase pattern")

// phraseMatchTimeout bounds one match of a phrase pattern. A match that
// runs out of time counts as no match and leaves the text unchanged.
const phraseMatchTimeout = 2 * time.Second

// Rewrite replaces every match of Pattern with Replace.
// Replace may reference groups as $1, ${name}.
type Rewrite struct {
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// PhraseConfig lists the corpus-specific heuristics in source form.
// Patterns use .NET/Python style syntax: lookarounds and inline flags
// such as (?i) or (?sm) are allowed.
type PhraseConfig struct {
	// SkipPhrases drop a caption chunk when any of them matches it.
	SkipPhrases []string
	// InlineStrips run in order over every paragraph.
	InlineStrips []Rewrite
	// Trailer is removed from the joined text. Empty disables it.
	Trailer string
	// Promos run in order over the joined text.
	Promos []Rewrite
	// SoundKeywords remove parenthesized asides that mention them.
	SoundKeywords []string
}

type compiledRewrite struct {
	re      *regexp2.Regexp
	replace string
}

// PhraseSet is the compiled, immutable form of a PhraseConfig.
// It is safe for concurrent use.
type PhraseSet struct {
	skip    []*regexp2.Regexp
	inline  []compiledRewrite
	trailer *regexp2.Regexp
	promos  []compiledRewrite
	sound   *regexp2.Regexp
}

// CompilePhraseSet compiles every pattern in cfg.
// Returns ErrInvalidPattern naming the first pattern that fails.
func CompilePhraseSet(cfg PhraseConfig) (*PhraseSet, error) {
	ps := &PhraseSet{}

	for i, p := range cfg.SkipPhrases {
		re, err := compile(fmt.Sprintf("skipPhrases[%d]", i), p)
		if err != nil {
			return nil, err
		}
		ps.skip = append(ps.skip, re)
	}

	var err error
	if ps.inline, err = compileRewrites("inlineStrips", cfg.InlineStrips); err != nil {
		return nil, err
	}
	if ps.promos, err = compileRewrites("promos", cfg.Promos); err != nil {
		return nil, err
	}

	if cfg.Trailer != "" {
		if ps.trailer, err = compile("trailer", cfg.Trailer); err != nil {
			return nil, err
		}
	}

	if ps.sound, err = compileSoundAside(cfg.SoundKeywords); err != nil {
		return nil, err
	}

	return ps, nil
}

// MustCompilePhraseSet is like CompilePhraseSet but panics on error.
// Intended for package-level defaults whose patterns are known to be valid.
func MustCompilePhraseSet(cfg PhraseConfig) *PhraseSet {
	ps, err := CompilePhraseSet(cfg)
	if err != nil {
		panic(err)
	}
	return ps
}

func compile(field, pattern string) (*regexp2.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: %s: empty pattern", ErrInvalidPattern, field)
	}
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrInvalidPattern, field, pattern, err)
	}
	re.MatchTimeout = phraseMatchTimeout
	return re, nil
}

func compileRewrites(field string, rewrites []Rewrite) ([]compiledRewrite, error) {
	out := make([]compiledRewrite, 0, len(rewrites))
	for i, rw := range rewrites {
		re, err := compile(fmt.Sprintf("%s[%d]", field, i), rw.Pattern)
		if err != nil {
			return nil, err
		}
		out = append(out, compiledRewrite{re: re, replace: rw.Replace})
	}
	return out, nil
}

// compileSoundAside builds one pattern matching "(...keyword...)" for any
// of the keywords. Keywords are literal text, not patterns.
func compileSoundAside(keywords []string) (*regexp2.Regexp, error) {
	escaped := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			escaped = append(escaped, regexp2.Escape(kw))
		}
	}
	if len(escaped) == 0 {
		return nil, nil
	}
	return compile("soundKeywords", `\([^)]*?(?:`+strings.Join(escaped, "|")+`)[^)]*?\)`)
}

// Skips reports whether a caption chunk matches any skip phrase.
func (ps *PhraseSet) Skips(text string) bool {
	for _, re := range ps.skip {
		if matchString(re, text) {
			return true
		}
	}
	return false
}

// StripInline applies the inline rewrites to a paragraph.
func (ps *PhraseSet) StripInline(paragraph string) string {
	return applyRewrites(ps.inline, paragraph)
}

// StripTrailer removes the trailer pattern from text.
func (ps *PhraseSet) StripTrailer(text string) string {
	if ps.trailer == nil {
		return text
	}
	return replaceAll(ps.trailer, text, "")
}

// StripPromos applies the promotional-passage rewrites to text.
func (ps *PhraseSet) StripPromos(text string) string {
	return applyRewrites(ps.promos, text)
}

// StripSoundAsides removes parenthesized asides naming a sound keyword.
func (ps *PhraseSet) StripSoundAsides(text string) string {
	if ps.sound == nil {
		return text
	}
	return replaceAll(ps.sound, text, "")
}

func applyRewrites(rewrites []compiledRewrite, s string) string {
	for _, rw := range rewrites {
		s = replaceAll(rw.re, s, rw.replace)
	}
	return s
}
