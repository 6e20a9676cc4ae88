package textclean

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-textclean/internal/assets"
	"github.com/alnah/go-textclean/internal/fileutil"
	"github.com/alnah/go-textclean/internal/pipeline"
)

// HTMLRenderer renders cleaned text as a standalone HTML preview page.
type HTMLRenderer struct {
	converter pipeline.HTMLConverter
	css       string
}

// NewHTMLRenderer creates an HTMLRenderer. WithStyle selects the stylesheet
// (default "default"); WithAssetPath adds a custom style directory.
func NewHTMLRenderer(opts ...Option) (*HTMLRenderer, error) {
	s := collect(opts)

	css, err := resolveStyle(s.style, s.assetPath)
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{converter: pipeline.NewGoldmarkConverter(), css: css}, nil
}

// resolveStyle loads a style by name through the asset resolver, or reads
// it from disk when nameOrPath looks like a path.
func resolveStyle(nameOrPath, assetPath string) (string, error) {
	if nameOrPath == "" {
		nameOrPath = assets.DefaultStyleName
	}
	if fileutil.IsFilePath(nameOrPath) {
		data, err := os.ReadFile(nameOrPath) // #nosec G304 -- user-provided stylesheet
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		return string(data), nil
	}

	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	return resolver.LoadStyle(nameOrPath)
}

// Render converts text (read as Markdown) into an HTML document titled title.
func (r *HTMLRenderer) Render(ctx context.Context, title, text string) (string, error) {
	return r.converter.ToHTML(ctx, pipeline.HTMLDocument{Title: title, Markdown: text, CSS: r.css})
}

// WriteFile renders text and writes it next to outputPath as
// "<outputPath>.html". Returns the HTML path.
func (r *HTMLRenderer) WriteFile(ctx context.Context, outputPath, text string) (string, error) {
	htmlPath := outputPath + ".html"
	title, _ := fileutil.SplitExt(filepath.Base(outputPath))

	page, err := r.Render(ctx, title, text)
	if err != nil {
		return "", err
	}
	if err := writeOutput(htmlPath, page); err != nil {
		return "", err
	}
	return htmlPath, nil
}
