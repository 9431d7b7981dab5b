package site

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/mad-scientist-star/barones-site/internal/fileutil"
	"github.com/mad-scientist-star/barones-site/internal/page"
)

// Bundle file layout.
const (
	IndexFile = "index.html"
	LogoDir   = "logos"
)

// VariantFile returns the bundle file name of the page with logo id selected.
func VariantFile(id int) string {
	return "logo-" + strconv.Itoa(id) + ".html"
}

// Bundle writes a static copy of the site into dir: index.html with the
// default selection, one variant page per logo, and the logo images.
// It returns the written paths relative to dir.
func (b *Builder) Bundle(ctx context.Context, dir string) ([]string, error) {
	sess, err := b.newSession(ctx,
		page.WithImageBase(LogoDir+"/"),
		page.WithSelectionLink(VariantFile),
	)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	var written []string
	write := func(subdir, name string, data []byte) error {
		if err := fileutil.WriteFile(filepath.Join(dir, subdir), name, data); err != nil {
			return fmt.Errorf("%w: %v", ErrBundleWrite, err)
		}
		written = append(written, filepath.ToSlash(filepath.Join(subdir, name)))
		return nil
	}
	render := func(name string) error {
		var buf bytes.Buffer
		if err := sess.Render(ctx, &buf); err != nil {
			return err
		}
		return write("", name, buf.Bytes())
	}

	if err := render(IndexFile); err != nil {
		return written, err
	}

	// One session walks every selection in catalog order.
	for _, asset := range b.Assets() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := sess.Select(asset.ID); err != nil {
			return written, err
		}
		if err := render(VariantFile(asset.ID)); err != nil {
			return written, err
		}
	}

	for _, asset := range b.Assets() {
		data, err := b.loader.LoadLogo(asset.ImageRef)
		if err != nil {
			return written, fmt.Errorf("%w: %s: %v", ErrMissingAsset, asset.ImageRef, err)
		}
		if err := write(LogoDir, asset.ImageRef, data); err != nil {
			return written, err
		}
	}

	return written, nil
}
