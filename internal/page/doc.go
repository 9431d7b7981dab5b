// Package page lays out the landing page and its display regions.
//
// A Layout holds everything that never changes between page loads: the
// parsed template, the rendered marketing copy and the platform cards.
// A Page binds a Layout to one brand.Controller. The header, hero and footer
// marks and the logo grid follow the controller's selection; the platform
// region does not. Every region is a templ.Component.
package page
