package site

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/page"
)

// Region names accepted by Session.Fragment.
const (
	RegionHeader    = page.RegionHeader
	RegionHero      = page.RegionHero
	RegionFooter    = page.RegionFooter
	RegionLogoGrid  = page.RegionGrid
	RegionPlatforms = page.RegionPlatforms
)

// Session is one page load: a logo selection and the regions showing it.
// It is not safe for concurrent use.
type Session struct {
	ctrl *brand.Controller
	page *page.Page
}

// Select makes the logo with the given id current and re-renders every
// region that shows it. An unknown id returns ErrInvalidSelection and
// keeps the previous logo. Selecting the current logo does nothing.
func (s *Session) Select(id int) error {
	return s.ctrl.Select(id)
}

// Current returns the selected logo.
func (s *Session) Current() BrandAsset {
	return s.ctrl.Current()
}

// Fragment returns the last rendered markup of a region.
func (s *Session) Fragment(region string) string {
	return string(s.page.Fragment(region))
}

// Render writes the full HTML document.
func (s *Session) Render(ctx context.Context, w io.Writer) error {
	return s.page.Render(ctx, w)
}

// Close detaches the regions from the selection.
func (s *Session) Close() {
	s.page.Close()
}

var _ templ.Component = (*Session)(nil)
