package assets

// Built-in asset names.
const (
	// DefaultStyleName is the stylesheet used when none is configured.
	DefaultStyleName = "default"

	// PageTemplateName holds the page layout and its region definitions.
	PageTemplateName = "page"

	// BrandCatalogName is the content file listing the logo concepts.
	BrandCatalogName = "brand"

	// PlatformCatalogName is the content file listing the download targets.
	PlatformCatalogName = "platforms"

	// PageContentName is the content file holding the marketing copy.
	PageContentName = "page"
)

// logoExtensions lists the image formats accepted as brand marks,
// mapped to the Content-Type they are served with.
var logoExtensions = map[string]string{
	".svg":  "image/svg+xml",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".webp": "image/webp",
}

// LogoContentType returns the Content-Type for a logo file name, or
// "application/octet-stream" for an unknown extension.
func LogoContentType(file string) string {
	if ct, ok := logoExtensions[extension(file)]; ok {
		return ct
	}
	return "application/octet-stream"
}
