// Package assets provides the stylesheets, page template, logo images, and
// content catalogs the landing page is built from.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem (defaults)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is what the site builder uses. A custom directory only needs
// to contain the files it overrides; everything else falls back to the
// embedded defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/{name}.css        # page stylesheets
//	├── templates/{name}.html    # page layout and region templates
//	├── logos/{file}             # brand mark images (svg, png, jpg, webp)
//	└── content/{name}.yaml      # brand catalog, platform catalog, page copy
//
// # Security
//
// Names are validated before touching the filesystem and FilesystemLoader
// resolves symlinks so every read stays within basePath.
package assets
