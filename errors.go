package site

import (
	"errors"

	"github.com/mad-scientist-star/barones-site/internal/brand"
	"github.com/mad-scientist-star/barones-site/internal/page"
	"github.com/mad-scientist-star/barones-site/internal/platform"
)

// Selection and catalog errors. These are the same values the internal
// packages return, so errors.Is works on any wrapped form.
var (
	ErrInvalidSelection = brand.ErrInvalidSelection
	ErrMissingAsset     = brand.ErrMissingAsset
	ErrInvalidCatalog   = brand.ErrInvalidCatalog
	ErrInvalidPlatform  = platform.ErrInvalidTarget
	ErrInvalidContent   = page.ErrInvalidContent
	ErrTemplateParse    = page.ErrTemplateParse
	ErrRender           = page.ErrRender
)

// Builder errors.
var (
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = errors.New("style not found")
	ErrInvalidAccent    = errors.New("invalid accent color")
	ErrBundleWrite      = errors.New("failed to write bundle")
)

// Snapshot errors.
var (
	ErrInvalidSnapshot = errors.New("invalid snapshot options")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrSnapshot        = errors.New("snapshot capture failed")
)
