// Package textclean turns subtitle tracks and loosely wrapped documents
// into clean paragraphed prose.
//
// # Quick Start
//
// Clean a subtitle track with the default (Dutch podwalk) filters:
//
//	text := textclean.Clean(srt)
//
// Reflow a line-wrapped document:
//
//	text := textclean.Reflow(markdown)
//
// # Subtitle Cleaning
//
// SubtitleCleaner groups colored caption spans into one paragraph per
// speaker run, merges sentences split across speakers, repairs punctuation
// and strips corpus-specific boilerplate:
//
//	cleaner, err := textclean.NewSubtitleCleaner(
//	    textclean.WithProfile("none"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := cleaner.ProcessFile("talk.srt", "") // writes talk_clean.txt
//
// The corpus heuristics (skipped phrases, inline strips, trailer, promos,
// sound keywords) are a Filters value. DefaultFilters returns the Dutch
// podwalk lists; WithFilters injects any other set.
//
// # Document Reflow
//
// DocumentReflower keeps a short title block, joins the intro into one
// paragraph, keeps "<number> <title>" chapter headings on their own and
// joins every blank-line separated block into one paragraph:
//
//	res, err := textclean.NewDocumentReflower().ProcessFile("book.md", "")
//
// # HTML Preview
//
// HTMLRenderer renders any cleaned text as a standalone HTML page:
//
//	r, err := textclean.NewHTMLRenderer(textclean.WithStyle("default"))
//	page, err := r.Render(ctx, "talk", res.Text)
//
// # Custom Assets
//
// Profiles and styles are looked up in a custom directory first:
//
//	assets/
//	├── profiles/
//	│   └── en-tour.yaml
//	└── styles/
//	    └── sepia.css
//
// and fall back to the embedded ones.
package textclean
