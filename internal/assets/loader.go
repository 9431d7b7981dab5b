package assets

// AssetLoader defines the contract for loading page assets.
// Implementations may load from embedded assets, filesystem, S3, database, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// LoadLogo loads a logo image by file name (with extension).
	// Returns ErrLogoNotFound if the image doesn't exist.
	LoadLogo(file string) ([]byte, error)

	// LoadContent loads a YAML content file by name (without .yaml extension).
	// Returns ErrContentNotFound if the file doesn't exist.
	LoadContent(name string) ([]byte, error)
}
