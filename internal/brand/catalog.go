package brand

import (
	"fmt"
	"strings"

	"github.com/mad-scientist-star/barones-site/internal/yamlutil"
)

// Asset is one candidate logo.
type Asset struct {
	ID       int    `yaml:"id"`
	ImageRef string `yaml:"image"`
	Label    string `yaml:"label"`
}

// Catalog is the fixed, ordered list of logo concepts. IDs run from 1 to
// Len() in order. A Catalog is immutable once built.
type Catalog struct {
	assets []Asset
}

// catalogFile mirrors content/brand.yaml.
type catalogFile struct {
	Assets []Asset `yaml:"assets"`
}

// NewCatalog validates assets and returns a catalog holding a copy of them.
// An entry without a label is labelled "Concept <id>".
func NewCatalog(assets []Asset) (*Catalog, error) {
	if len(assets) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", ErrMissingAsset)
	}

	owned := make([]Asset, len(assets))
	for i, a := range assets {
		if a.ID != i+1 {
			return nil, fmt.Errorf("%w: entry %d has id %d, want %d", ErrInvalidCatalog, i, a.ID, i+1)
		}
		a.ImageRef = strings.TrimSpace(a.ImageRef)
		if a.ImageRef == "" {
			return nil, fmt.Errorf("%w: entry %d has no image", ErrMissingAsset, a.ID)
		}
		if strings.TrimSpace(a.Label) == "" {
			a.Label = fmt.Sprintf("Concept %d", a.ID)
		}
		owned[i] = a
	}

	return &Catalog{assets: owned}, nil
}

// ParseCatalog decodes a brand content file and validates it.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yamlutil.UnmarshalStrict(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, yamlutil.FormatError(err))
	}
	return NewCatalog(file.Assets)
}

// Get returns the asset with the given id.
func (c *Catalog) Get(id int) (Asset, bool) {
	if id < 1 || id > len(c.assets) {
		return Asset{}, false
	}
	return c.assets[id-1], true
}

// All returns every asset in catalog order. The slice is a copy.
func (c *Catalog) All() []Asset {
	out := make([]Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

// Len returns the number of assets.
func (c *Catalog) Len() int {
	return len(c.assets)
}

// First returns the default selection.
func (c *Catalog) First() Asset {
	return c.assets[0]
}

// Verify calls resolve for every image reference and reports the first
// one that fails as ErrMissingAsset.
func (c *Catalog) Verify(resolve func(ref string) error) error {
	for _, a := range c.assets {
		if err := resolve(a.ImageRef); err != nil {
			return fmt.Errorf("%w: %s (asset %d): %v", ErrMissingAsset, a.ImageRef, a.ID, err)
		}
	}
	return nil
}
