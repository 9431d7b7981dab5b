package brand

import "errors"

// Sentinel errors for catalog construction and selection.
var (
	// ErrMissingAsset indicates the catalog is empty or an entry's image
	// cannot be resolved.
	ErrMissingAsset = errors.New("missing brand asset")

	// ErrInvalidCatalog indicates catalog entries break the id or field rules.
	ErrInvalidCatalog = errors.New("invalid brand catalog")

	// ErrInvalidSelection indicates a selection id outside the catalog.
	ErrInvalidSelection = errors.New("invalid selection")
)
