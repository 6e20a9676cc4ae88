// Package pipeline implements the text rewrite stages behind both cleaners.
//
// Each stage is a small function over a whole in-memory buffer:
//   - line-ending and blank-line normalization shared by both pipelines
//   - subtitle stages: entry segmentation, sound-cue filtering, colored
//     chunk extraction, paragraph grouping, continuation merging,
//     punctuation repair and boilerplate stripping
//   - document stages: intro/chapter split, title-block consolidation
//     and paragraph reflow
//   - Markdown to HTML rendering via Goldmark for output previews
//
// Corpus-specific phrase heuristics are not hard-coded here. They arrive
// as a compiled PhraseSet built from caller-supplied patterns.
package pipeline
