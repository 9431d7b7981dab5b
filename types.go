package site

import (
	"regexp"
	"time"

	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/platform"
)

// BrandAsset is one candidate logo: a positive id, the bundled image file
// name, and a display label.
type BrandAsset = brand.Asset

// PlatformTarget is one distribution entry of the download section.
type PlatformTarget = platform.Target

// Site carries the identity shown in the header, hero and footer.
type Site struct {
	Name          string
	Tagline       string
	Description   string
	RepositoryURL string
	// Copyright may contain "{year}", replaced by Year.
	Copyright string
	// Year is a literal, "auto", "auto:FORMAT" or "since:YYYY".
	Year string
}

// DefaultSite returns the Barones Free Space Cleaner identity.
func DefaultSite() Site {
	return Site{
		Name:          "Barones Free Space Cleaner",
		Tagline:       "Secure Data Deletion for Linux",
		Description:   "Open source data deletion tool",
		RepositoryURL: "https://github.com/Mad-scientist-star/Barones-Free-Space-Cleaner",
		Copyright:     "© {year} Barones Free Space Cleaner. Open source software.",
		Year:          "auto:YYYY",
	}
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds the settings collected from options.
type builderConfig struct {
	assetPath string
	style     string
	accent    string
	highlight string
	site      Site
	timeout   time.Duration
	now       func() time.Time
}

// defaultTimeout bounds a snapshot when the context has no deadline.
const defaultTimeout = 30 * time.Second

var accentPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// WithAssetPath sets a directory whose files override the embedded assets.
func WithAssetPath(path string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = path
	}
}

// WithStyle selects a stylesheet by name ("default", "midnight") or by
// file path.
func WithStyle(nameOrPath string) Option {
	return func(b *Builder) {
		b.cfg.style = nameOrPath
	}
}

// WithAccent overrides the accent color with a #rgb or #rrggbb value.
func WithAccent(hex string) Option {
	return func(b *Builder) {
		b.cfg.accent = hex
	}
}

// WithHighlightStyle selects the Chroma style for install commands.
func WithHighlightStyle(name string) Option {
	return func(b *Builder) {
		b.cfg.highlight = name
	}
}

// WithSite replaces the site identity. Empty fields keep their defaults.
func WithSite(s Site) Option {
	return func(b *Builder) {
		b.cfg.site = mergeSite(b.cfg.site, s)
	}
}

// WithTimeout sets the snapshot timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("site: WithTimeout duration must be positive")
	}
	return func(b *Builder) {
		b.cfg.timeout = d
	}
}

// WithClock sets the clock used to resolve "auto" years.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.cfg.now = now
		}
	}
}

func mergeSite(base, override Site) Site {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&base.Name, override.Name)
	pick(&base.Tagline, override.Tagline)
	pick(&base.Description, override.Description)
	pick(&base.RepositoryURL, override.RepositoryURL)
	pick(&base.Copyright, override.Copyright)
	pick(&base.Year, override.Year)
	return base
}
