package page

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/pipeline"
	"github.com/mad-scientist-star/barones-site/internal/platform"
)

// Sentinel errors for layout construction and rendering.
var (
	ErrTemplateParse = errors.New("page template parse failed")
	ErrRender        = errors.New("page render failed")
)

// requiredTemplates are the definitions every page template must provide.
var requiredTemplates = []string{"page", "mark", "logo-grid", "platform-cards"}

// Site carries the identity shown in the header and footer.
type Site struct {
	Name          string
	Tagline       string
	Description   string
	RepositoryURL string
	Copyright     string
}

// LayoutConfig holds the inputs of NewLayout. All fields are required
// except CSS.
type LayoutConfig struct {
	Template    string
	Site        Site
	Content     *Content
	Brand       *brand.Catalog
	Platforms   *platform.Catalog
	Markdown    MarkdownRenderer
	Highlighter CommandRenderer
	CSS         string
}

// Layout is the immutable, shareable part of the page.
type Layout struct {
	tmpl      *template.Template
	site      Site
	copy      renderedCopy
	brand     *brand.Catalog
	platforms *PlatformRegion
	css       string
	injector  pipeline.CSSInjector
}

// NewLayout parses the template and pre-renders everything that does not
// depend on the selection.
func NewLayout(ctx context.Context, cfg LayoutConfig) (*Layout, error) {
	if cfg.Content == nil || cfg.Brand == nil || cfg.Platforms == nil || cfg.Markdown == nil || cfg.Highlighter == nil {
		return nil, errors.New("page: incomplete layout config")
	}

	tmpl, err := template.New("layout").Parse(cfg.Template)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	var missing []string
	for _, name := range requiredTemplates {
		if tmpl.Lookup(name) == nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing definitions %s", ErrTemplateParse, strings.Join(missing, ", "))
	}

	rendered, err := renderCopy(ctx, cfg.Markdown, cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	platforms, err := newPlatformRegion(tmpl, cfg.Platforms, cfg.Highlighter)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}

	return &Layout{
		tmpl:      tmpl,
		site:      cfg.Site,
		copy:      rendered,
		brand:     cfg.Brand,
		platforms: platforms,
		css:       cfg.CSS,
		injector:  &pipeline.CSSInjection{},
	}, nil
}

// Brand returns the logo catalog the layout was built with.
func (l *Layout) Brand() *brand.Catalog {
	return l.brand
}

// Site returns the site identity.
func (l *Layout) Site() Site {
	return l.site
}
