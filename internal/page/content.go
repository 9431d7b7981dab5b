package page

import (
	"context"
	"errors"
	"fmt"
	"html/template"

	"github.com/mad-scientist-star/barones-site/internal/yamlutil"
)

// ErrInvalidContent indicates the page copy file could not be decoded.
var ErrInvalidContent = errors.New("invalid page content")

// Content is the marketing copy. Lead and Body fields are Markdown.
type Content struct {
	Hero         HeroCopy    `yaml:"hero"`
	Why          CardSection `yaml:"why"`
	Features     CardSection `yaml:"features"`
	Downloads    Heading     `yaml:"downloads"`
	AfterInstall Notes       `yaml:"afterInstall"`
	Logos        Heading     `yaml:"logos"`
}

// HeroCopy is the text above the fold.
type HeroCopy struct {
	Badge           string `yaml:"badge"`
	Headline        string `yaml:"headline"`
	Lead            string `yaml:"lead"`
	PrimaryAction   string `yaml:"primaryAction"`
	SecondaryAction string `yaml:"secondaryAction"`
}

// Heading is a section title with a subtitle.
type Heading struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// CardSection is a titled group of cards.
type CardSection struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Cards    []Card `yaml:"cards"`
}

// Card is one tile. Icon and Accent are optional.
type Card struct {
	Title  string `yaml:"title"`
	Icon   string `yaml:"icon"`
	Accent string `yaml:"accent"`
	Body   string `yaml:"body"`
}

// Notes is a titled Markdown block.
type Notes struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// ParseContent decodes a page content file.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yamlutil.UnmarshalStrict(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidContent, yamlutil.FormatError(err))
	}
	if c.Hero.Headline == "" {
		return nil, fmt.Errorf("%w: hero headline is required", ErrInvalidContent)
	}
	return &c, nil
}

// MarkdownRenderer converts Markdown to an HTML fragment.
type MarkdownRenderer interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

type renderedCard struct {
	Title  string
	Icon   string
	Accent string
	Body   template.HTML
}

type renderedSection struct {
	Title    string
	Subtitle string
	Cards    []renderedCard
}

type renderedHero struct {
	Badge           string
	Headline        string
	Lead            template.HTML
	PrimaryAction   string
	SecondaryAction string
}

type renderedNotes struct {
	Title string
	Body  template.HTML
}

type renderedCopy struct {
	Hero         renderedHero
	Why          renderedSection
	Features     renderedSection
	Downloads    Heading
	AfterInstall renderedNotes
	Logos        Heading
}

// renderCopy converts every Markdown field once. The renderer does not
// allow raw HTML, so its output is trusted as template.HTML.
func renderCopy(ctx context.Context, md MarkdownRenderer, c *Content) (renderedCopy, error) {
	toHTML := func(s string) (template.HTML, error) {
		out, err := md.ToHTML(ctx, s)
		return template.HTML(out), err // #nosec G203 -- renderer drops raw HTML
	}

	section := func(s CardSection) (renderedSection, error) {
		out := renderedSection{Title: s.Title, Subtitle: s.Subtitle}
		for _, card := range s.Cards {
			body, err := toHTML(card.Body)
			if err != nil {
				return renderedSection{}, fmt.Errorf("card %q: %w", card.Title, err)
			}
			out.Cards = append(out.Cards, renderedCard{
				Title:  card.Title,
				Icon:   card.Icon,
				Accent: card.Accent,
				Body:   body,
			})
		}
		return out, nil
	}

	lead, err := toHTML(c.Hero.Lead)
	if err != nil {
		return renderedCopy{}, fmt.Errorf("hero lead: %w", err)
	}
	why, err := section(c.Why)
	if err != nil {
		return renderedCopy{}, err
	}
	features, err := section(c.Features)
	if err != nil {
		return renderedCopy{}, err
	}
	notes, err := toHTML(c.AfterInstall.Body)
	if err != nil {
		return renderedCopy{}, fmt.Errorf("after install notes: %w", err)
	}

	return renderedCopy{
		Hero: renderedHero{
			Badge:           c.Hero.Badge,
			Headline:        c.Hero.Headline,
			Lead:            lead,
			PrimaryAction:   c.Hero.PrimaryAction,
			SecondaryAction: c.Hero.SecondaryAction,
		},
		Why:          why,
		Features:     features,
		Downloads:    c.Downloads,
		AfterInstall: renderedNotes{Title: c.AfterInstall.Title, Body: notes},
		Logos:        c.Logos,
	}, nil
}
