package page

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mad-scientist-star/barones-site/internal/brand"
)

// Option configures a Page.
type Option func(*Page)

// WithImageBase sets the prefix placed before logo file names.
// Defaults to "/logos/".
func WithImageBase(base string) Option {
	return func(p *Page) {
		p.imageBase = base
	}
}

// WithSelectionLink sets how a logo grid entry links to its selection.
// Defaults to "?logo=<id>".
func WithSelectionLink(link func(id int) string) Option {
	return func(p *Page) {
		if link != nil {
			p.link = link
		}
	}
}

// QueryLink is the default selection link.
func QueryLink(id int) string {
	return "?logo=" + strconv.Itoa(id)
}

// Page is one rendering of the layout bound to a selection controller.
// It is not safe for concurrent use.
type Page struct {
	layout    *Layout
	imageBase string
	link      func(id int) string

	Header    *MarkRegion
	Hero      *MarkRegion
	Footer    *MarkRegion
	Grid      *GridRegion
	Platforms *PlatformRegion

	// fragments caches the selection-bound regions, refreshed on every
	// selection change.
	fragments   map[string]template.HTML
	renderErr   error
	unsubscribe func()
}

// New binds layout to ctrl and renders every region once.
func New(ctx context.Context, layout *Layout, ctrl *brand.Controller, opts ...Option) (*Page, error) {
	p := &Page{
		layout:    layout,
		imageBase: "/logos/",
		link:      QueryLink,
		fragments: make(map[string]template.HTML, 5),
	}
	for _, opt := range opts {
		opt(p)
	}

	src := prefixedSource(p.imageBase)
	mark := func(name string) *MarkRegion {
		return &MarkRegion{tmpl: layout.tmpl, reader: ctrl, name: name, src: src}
	}
	p.Header = mark(RegionHeader)
	p.Hero = mark(RegionHero)
	p.Footer = mark(RegionFooter)
	p.Grid = &GridRegion{tmpl: layout.tmpl, reader: ctrl, catalog: ctrl.Catalog(), src: src, link: p.link}
	p.Platforms = layout.platforms

	if err := p.refresh(ctx); err != nil {
		return nil, err
	}
	platforms, err := templ.ToGoHTML(ctx, p.Platforms)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRender, RegionPlatforms, err)
	}
	p.fragments[RegionPlatforms] = platforms

	p.unsubscribe = ctrl.Subscribe(brand.ObserverFunc(func(brand.Asset) {
		p.renderErr = p.refresh(context.Background())
	}))
	return p, nil
}

// refresh re-renders the regions that show the selection.
func (p *Page) refresh(ctx context.Context) error {
	for _, region := range p.boundRegions() {
		fragment, err := templ.ToGoHTML(ctx, region)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrRender, region.Name(), err)
		}
		p.fragments[region.Name()] = fragment
	}
	return nil
}

type namedRegion interface {
	templ.Component
	Name() string
}

func (p *Page) boundRegions() []namedRegion {
	return []namedRegion{p.Header, p.Hero, p.Footer, p.Grid}
}

// Fragment returns the last rendered markup of the named region.
func (p *Page) Fragment(name string) template.HTML {
	return p.fragments[name]
}

type pageData struct {
	Site      Site
	Copy      renderedCopy
	Header    template.HTML
	Hero      template.HTML
	Footer    template.HTML
	Grid      template.HTML
	Platforms template.HTML
}

// Render writes the full HTML document with the stylesheet injected.
func (p *Page) Render(ctx context.Context, w io.Writer) error {
	if p.renderErr != nil {
		return p.renderErr
	}

	var buf bytes.Buffer
	err := templ.FromGoHTML(p.layout.tmpl.Lookup("page"), pageData{
		Site:      p.layout.site,
		Copy:      p.layout.copy,
		Header:    p.fragments[RegionHeader],
		Hero:      p.fragments[RegionHero],
		Footer:    p.fragments[RegionFooter],
		Grid:      p.fragments[RegionGrid],
		Platforms: p.fragments[RegionPlatforms],
	}).Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRender, err)
	}

	_, err = io.WriteString(w, p.layout.injector.InjectCSS(ctx, buf.String(), p.layout.css))
	return err
}

// Close detaches the page from its controller.
func (p *Page) Close() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}
}

// Compile-time interface check.
var _ templ.Component = (*Page)(nil)
