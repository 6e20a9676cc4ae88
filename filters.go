package textclean

import (
	"fmt"

	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/pipeline"
	"github.com/alnah/go-textclean/internal/yamlutil"
)

// DefaultProfileName is the filter profile matching DefaultFilters.
const DefaultProfileName = assets.DefaultProfileName

// Rewrite replaces every match of Pattern with Replace.
// Replace may reference groups as $1 or ${name}.
type Rewrite = pipeline.Rewrite

// Filters holds the corpus-specific heuristics of the subtitle cleaner.
// Its fields mirror pipeline.PhraseConfig so one converts to the other.
// Patterns support lookarounds and inline flags such as (?i), (?s), (?m).
type Filters struct {
	// SkipPhrases drop a caption span when any of them matches its text.
	SkipPhrases []string
	// InlineStrips run in order over every paragraph.
	InlineStrips []Rewrite
	// Trailer is removed from the joined text. Empty disables it.
	Trailer string
	// Promos run in order over the joined text.
	Promos []Rewrite
	// SoundKeywords remove parenthesized asides that mention any of them.
	SoundKeywords []string
}

// DefaultFilters returns the Dutch podwalk heuristics: "go/off" command
// interjections, the "De sliet" scene marker, the "Drei Koggen" title card,
// the "informatie:" attribution line, app promotions and ambient sound asides.
func DefaultFilters() Filters {
	return Filters{
		SkipPhrases: []string{
			`(?i)^(Ja,?\s+(op|los)|En\s+(op|los)|Los|Op|Ok(é|e),?\s+op)[!.]?\s*$`,
			`(?i)^(De\s+sliet)[!.]\s*$`,
		},
		InlineStrips: []Rewrite{
			{Pattern: `(?i)\b(Ja|Nee|En|Los|Op), (op|los|ja|nee)!`, Replace: ""},
			{Pattern: `\b(De sliet)\b`, Replace: ""},
			{Pattern: `\b(En los|En op|Los|Op|Ja op|Oké op)\! `, Replace: " "},
			{Pattern: `^\s*\b(Drei Koggen)\.\s*$`, Replace: ""},
		},
		Trailer: `\n\ninformatie: [^\n]+$`,
		Promos: []Rewrite{
			{
				Pattern: `(?sm)(Volgende keer in|Download nu|Via de app|Kijk, daar|Johnny en Tante Leen).*?(verhaal van|podwalk|ga er ?op ?uit).*?(\.\s*$|\n)`,
				Replace: ".",
			},
		},
		SoundKeywords: []string{"rumoer", "blaft", "gejuich", "gezang", "podcast", "geluid"},
	}
}

// Validate compiles every pattern and reports the first failure.
func (f Filters) Validate() error {
	_, err := f.compile()
	return err
}

// Override returns f with every non-empty field of o replacing its own.
func (f Filters) Override(o Filters) Filters {
	if len(o.SkipPhrases) > 0 {
		f.SkipPhrases = o.SkipPhrases
	}
	if len(o.InlineStrips) > 0 {
		f.InlineStrips = o.InlineStrips
	}
	if o.Trailer != "" {
		f.Trailer = o.Trailer
	}
	if len(o.Promos) > 0 {
		f.Promos = o.Promos
	}
	if len(o.SoundKeywords) > 0 {
		f.SoundKeywords = o.SoundKeywords
	}
	return f
}

// MarshalYAML renders f in the profile file format, so the output of
// `srtclean --print-filters` can be saved as a custom profile.
func (f Filters) MarshalYAML() ([]byte, error) {
	p := assets.Profile{
		SkipPhrases:   f.SkipPhrases,
		InlineStrips:  f.InlineStrips,
		Trailer:       f.Trailer,
		Promos:        f.Promos,
		SoundKeywords: f.SoundKeywords,
	}
	return yamlutil.Marshal(p)
}

// LoadFilters resolves a profile by name, looking in assetPath/profiles
// first when assetPath is set, then in the embedded profiles.
func LoadFilters(profile, assetPath string) (Filters, error) {
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return Filters{}, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	p, err := resolver.LoadProfile(profile)
	if err != nil {
		return Filters{}, err
	}
	return filtersFromProfile(p), nil
}

// ProfileNames lists the built-in filter profiles.
func ProfileNames() []string {
	return assets.NewEmbeddedLoader().ProfileNames()
}

func (f Filters) compile() (*pipeline.PhraseSet, error) {
	ps, err := pipeline.CompilePhraseSet(pipeline.PhraseConfig(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	return ps, nil
}

func filtersFromProfile(p *assets.Profile) Filters {
	return Filters{
		SkipPhrases:   p.SkipPhrases,
		InlineStrips:  p.InlineStrips,
		Trailer:       p.Trailer,
		Promos:        p.Promos,
		SoundKeywords: p.SoundKeywords,
	}
}
