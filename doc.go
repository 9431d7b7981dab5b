// Package site builds the Barones Free Space Cleaner landing page.
//
// # Quick Start
//
// Create a builder, open a session, select a logo, and render:
//
//	b, err := site.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer b.Close()
//
//	sess, err := b.NewSession(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sess.Close()
//
//	if err := sess.Select(3); err != nil {
//	    // ErrInvalidSelection: the previous logo stays selected.
//	}
//	err = sess.Render(ctx, os.Stdout)
//
// # Sessions
//
// A Session owns one logo selection and the page regions showing it: the
// header, hero and footer marks and the logo grid. Selecting a logo
// re-renders every bound region before Select returns, so all regions
// always agree. The platform download cards never depend on the
// selection. Sessions are not safe for concurrent use; open one per
// request or goroutine. Sessions opened from the same Builder share the
// parsed template, the rendered copy and the catalogs.
//
// # Outputs
//
//   - Builder.Render writes the page with the default selection.
//   - Builder.Bundle writes a static site: index.html, one logo-N.html
//     per logo, and the logo images under logos/.
//   - Builder.Snapshot captures a session as PDF or PNG with headless
//     Chrome (go-rod).
//
// # Custom Assets
//
// WithAssetPath points at a directory that overrides embedded files:
//
//	assets/
//	├── content/
//	│   ├── brand.yaml
//	│   ├── page.yaml
//	│   └── platforms.yaml
//	├── logos/
//	│   └── logo_concept_1.svg
//	├── styles/
//	│   └── custom.css
//	└── templates/
//	    └── page.html
//
// Missing files fall back to the embedded defaults.
//
// # Browser Requirements
//
// Snapshots require Chrome/Chromium. The go-rod library downloads a managed
// Chromium on first run (~/.cache/rod/browser/). Set ROD_NO_SANDBOX=1 in
// containers and ROD_BROWSER_BIN to use a specific binary.
package site
