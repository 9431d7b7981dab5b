package site

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mad-scientist-star/barones-site/internal/assets"
	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/dateutil"
	"github.com/mad-scientist-star/barones-site/internal/hints"
	"github.com/mad-scientist-star/barones-site/internal/page"
	"github.com/mad-scientist-star/barones-site/internal/pipeline"
	"github.com/mad-scientist-star/barones-site/internal/platform"
)

// Compile-time interface implementation checks.
var (
	_ page.MarkdownRenderer = (*pipeline.GoldmarkConverter)(nil)
	_ page.CommandRenderer  = (*pipeline.CommandHighlighter)(nil)
	_ assets.AssetLoader    = (*assets.AssetResolver)(nil)
	_ snapshotter           = (*rodSnapshotter)(nil)
)

// Builder loads the catalogs, copy and templates once and opens page
// sessions over them. Create with NewBuilder and Close when done.
type Builder struct {
	cfg       builderConfig
	loader    assets.AssetLoader
	layout    *page.Layout
	platforms *platform.Catalog
	snapshot  snapshotter
}

// NewBuilder loads every asset the page needs and checks that each logo in
// the brand catalog resolves. Returns ErrMissingAsset when the catalog is
// empty or a logo image cannot be found.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			site:    DefaultSite(),
			timeout: defaultTimeout,
			now:     time.Now,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := b.resolveLoader(); err != nil {
		return nil, err
	}

	catalog, err := b.loadBrand()
	if err != nil {
		return nil, err
	}

	platformData, err := b.loader.LoadContent(assets.PlatformCatalogName)
	if err != nil {
		return nil, fmt.Errorf("loading platforms: %w", err)
	}
	b.platforms, err = platform.ParseCatalog(platformData)
	if err != nil {
		return nil, fmt.Errorf("loading platforms: %w", err)
	}

	contentData, err := b.loader.LoadContent(assets.PageContentName)
	if err != nil {
		return nil, fmt.Errorf("loading page content: %w", err)
	}
	content, err := page.ParseContent(contentData)
	if err != nil {
		return nil, fmt.Errorf("loading page content: %w", err)
	}

	tmpl, err := b.loader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return nil, fmt.Errorf("loading page template: %w", err)
	}

	highlighter := pipeline.NewCommandHighlighter(b.cfg.highlight)
	css, err := buildStylesheet(b.loader, b.cfg.style, b.cfg.accent, highlighter)
	if err != nil {
		return nil, err
	}

	identity, err := b.resolveSite()
	if err != nil {
		return nil, err
	}

	b.layout, err = page.NewLayout(context.Background(), page.LayoutConfig{
		Template:    tmpl,
		Site:        identity,
		Content:     content,
		Brand:       catalog,
		Platforms:   b.platforms,
		Markdown:    pipeline.NewGoldmarkConverter(),
		Highlighter: highlighter,
		CSS:         css,
	})
	if err != nil {
		return nil, err
	}

	if b.snapshot == nil {
		b.snapshot = newRodSnapshotter(b.cfg.timeout)
	}

	return b, nil
}

// resolveLoader picks the embedded assets or a custom-first resolver.
func (b *Builder) resolveLoader() error {
	if b.loader != nil {
		return nil
	}
	if b.cfg.assetPath == "" {
		b.loader = assets.NewEmbeddedLoader()
		return nil
	}
	resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	b.loader = resolver
	return nil
}

// loadBrand parses the brand catalog and verifies every image exists.
func (b *Builder) loadBrand() (*brand.Catalog, error) {
	data, err := b.loader.LoadContent(assets.BrandCatalogName)
	if err != nil {
		if errors.Is(err, assets.ErrContentNotFound) {
			return nil, fmt.Errorf("%w: no brand catalog: %v", ErrMissingAsset, err)
		}
		return nil, fmt.Errorf("loading brand catalog: %w", err)
	}

	catalog, err := brand.ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("loading brand catalog: %w", err)
	}

	err = catalog.Verify(func(ref string) error {
		_, err := b.loader.LoadLogo(ref)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, hints.ForMissingLogo(b.cfg.assetPath))
	}
	return catalog, nil
}

// resolveSite expands the year placeholder in the copyright line.
func (b *Builder) resolveSite() (page.Site, error) {
	s := b.cfg.site
	copyright, err := dateutil.Expand(s.Copyright, s.Year, b.cfg.now())
	if err != nil {
		return page.Site{}, fmt.Errorf("resolving copyright year: %w", err)
	}
	return page.Site{
		Name:          s.Name,
		Tagline:       s.Tagline,
		Description:   s.Description,
		RepositoryURL: s.RepositoryURL,
		Copyright:     copyright,
	}, nil
}

// Assets returns the brand catalog in order.
func (b *Builder) Assets() []BrandAsset {
	return b.layout.Brand().All()
}

// Platforms returns the download targets in order.
func (b *Builder) Platforms() []PlatformTarget {
	return b.platforms.Targets()
}

// LoadLogo returns the bytes of a bundled logo image.
func (b *Builder) LoadLogo(file string) ([]byte, error) {
	return b.loader.LoadLogo(file)
}

// NewSession opens a page session with the default selection.
func (b *Builder) NewSession(ctx context.Context) (*Session, error) {
	return b.newSession(ctx)
}

func (b *Builder) newSession(ctx context.Context, opts ...page.Option) (*Session, error) {
	ctrl := brand.NewController(b.layout.Brand())
	p, err := page.New(ctx, b.layout, ctrl, opts...)
	if err != nil {
		return nil, err
	}
	return &Session{ctrl: ctrl, page: p}, nil
}

// Render writes the page with the default selection.
func (b *Builder) Render(ctx context.Context, w io.Writer) error {
	sess, err := b.NewSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()
	return sess.Render(ctx, w)
}

// Close releases the headless browser, if one was started.
func (b *Builder) Close() error {
	if b.snapshot != nil {
		return b.snapshot.Close()
	}
	return nil
}
