package assets

import (
	"fmt"

	"github.com/alnah/go-textclean/internal/pipeline"
	"github.com/alnah/go-textclean/internal/yamlutil"
)

// Built-in asset names.
const (
	DefaultProfileName = "nl-podwalk"
	DefaultStyleName   = "default"
)

// Rewrite is one pattern/replacement pair of a profile.
type Rewrite = pipeline.Rewrite

// Profile is a named set of phrase heuristics for one subtitle corpus.
// Patterns are not compiled here; see the pipeline package.
type Profile struct {
	Name          string    `yaml:"-"`
	Description   string    `yaml:"description,omitempty"`
	SkipPhrases   []string  `yaml:"skipPhrases,omitempty"`
	InlineStrips  []Rewrite `yaml:"inlineStrips,omitempty"`
	Trailer       string    `yaml:"trailer,omitempty"`
	Promos        []Rewrite `yaml:"promos,omitempty"`
	SoundKeywords []string  `yaml:"soundKeywords,omitempty"`
}

// parseProfile decodes profile YAML strictly.
func parseProfile(name string, data []byte) (*Profile, error) {
	p := &Profile{}
	if err := yamlutil.UnmarshalStrict(data, p); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidProfile, name, err)
	}
	p.Name = name
	return p, nil
}
