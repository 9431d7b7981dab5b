package page

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/a-h/templ"

	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/platform"
)

// Region names, also written to the data-region attribute.
const (
	RegionHeader    = "header"
	RegionHero      = "hero"
	RegionFooter    = "footer"
	RegionGrid      = "logo-grid"
	RegionPlatforms = "platforms"
)

// imageSource maps an image reference to the src attribute value.
type imageSource func(ref string) template.URL

func prefixedSource(base string) imageSource {
	return func(ref string) template.URL {
		return template.URL(base + url.PathEscape(ref)) // #nosec G203 -- escaped file name under a fixed prefix
	}
}

// MarkRegion shows the selected logo in one place on the page.
type MarkRegion struct {
	tmpl   *template.Template
	reader brand.Reader
	name   string
	src    imageSource
}

type markData struct {
	Class  string
	Region string
	Src    template.URL
	Alt    string
	ID     int
}

// Name returns the region name.
func (m *MarkRegion) Name() string { return m.name }

// Render writes the mark for the asset selected at call time.
func (m *MarkRegion) Render(ctx context.Context, w io.Writer) error {
	current := m.reader.Current()
	return templ.FromGoHTML(m.tmpl.Lookup("mark"), markData{
		Class:  "mark-" + m.name,
		Region: m.name,
		Src:    m.src(current.ImageRef),
		Alt:    current.Label,
		ID:     current.ID,
	}).Render(ctx, w)
}

// GridRegion lists every logo concept with the selected one marked.
type GridRegion struct {
	tmpl    *template.Template
	reader  brand.Reader
	catalog *brand.Catalog
	src     imageSource
	link    func(id int) string
}

type gridEntry struct {
	ID       int
	Label    string
	Src      template.URL
	Href     string
	Selected bool
}

type gridData struct {
	Entries []gridEntry
}

// Name returns the region name.
func (g *GridRegion) Name() string { return RegionGrid }

// Render writes one entry per catalog asset.
func (g *GridRegion) Render(ctx context.Context, w io.Writer) error {
	selected := g.reader.SelectedID()
	assets := g.catalog.All()

	data := gridData{Entries: make([]gridEntry, 0, len(assets))}
	for _, a := range assets {
		data.Entries = append(data.Entries, gridEntry{
			ID:       a.ID,
			Label:    a.Label,
			Src:      g.src(a.ImageRef),
			Href:     g.link(a.ID),
			Selected: a.ID == selected,
		})
	}
	return templ.FromGoHTML(g.tmpl.Lookup("logo-grid"), data).Render(ctx, w)
}

// PlatformRegion renders the download cards. It ignores the selection.
type PlatformRegion struct {
	tmpl  *template.Template
	cards []platformCard
}

type platformCard struct {
	Name         string
	Description  string
	Kind         string
	External     bool
	Href         string
	Filename     string
	ActionLabel  string
	InstallLabel string
	Command      template.HTML
	CommandText  string
	Note         string
	Icon         string
	Accent       string
}

// CommandRenderer turns an install command into escaped markup.
type CommandRenderer interface {
	Highlight(command string) (string, error)
}

func newPlatformRegion(tmpl *template.Template, catalog *platform.Catalog, hl CommandRenderer) (*PlatformRegion, error) {
	targets := catalog.Targets()
	cards := make([]platformCard, 0, len(targets))
	for _, t := range targets {
		command, err := hl.Highlight(t.InstallCommand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", t.Name, err)
		}
		cards = append(cards, platformCard{
			Name:         t.Name,
			Description:  t.Description,
			Kind:         t.Kind.String(),
			External:     t.External(),
			Href:         t.Download.URL,
			Filename:     t.Download.Filename,
			ActionLabel:  t.ActionLabel,
			InstallLabel: t.InstallLabel,
			Command:      template.HTML(command), // #nosec G203 -- highlighter escapes the command text
			CommandText:  t.InstallCommand,
			Note:         t.Note,
			Icon:         t.Icon,
			Accent:       t.Accent,
		})
	}
	return &PlatformRegion{tmpl: tmpl, cards: cards}, nil
}

// Name returns the region name.
func (p *PlatformRegion) Name() string { return RegionPlatforms }

// Render writes the cards in catalog order.
func (p *PlatformRegion) Render(ctx context.Context, w io.Writer) error {
	return templ.FromGoHTML(p.tmpl.Lookup("platform-cards"), struct{ Cards []platformCard }{p.cards}).Render(ctx, w)
}

// Compile-time interface checks.
var (
	_ templ.Component = (*MarkRegion)(nil)
	_ templ.Component = (*GridRegion)(nil)
	_ templ.Component = (*PlatformRegion)(nil)
)
