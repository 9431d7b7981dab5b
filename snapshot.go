package site

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/mad-scientist-star/barones-site/internal/assets"
	"github.com/mad-scientist-star/barones-site/internal/fileutil"
	"github.com/mad-scientist-star/barones-site/internal/hints"
	"github.com/mad-scientist-star/barones-site/internal/pipeline"
	"github.com/mad-scientist-star/barones-site/internal/process"
)

// Snapshot formats.
const (
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// Snapshot defaults.
const (
	DefaultPageSize = "letter"
	DefaultWidth    = 1280
	MaxWidth        = 4096
	defaultHeight   = 800
	marginInches    = 0.4
)

// paperSizes maps page size names to width and height in inches.
var paperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"a4":     {8.27, 11.69},
	"legal":  {8.5, 14},
}

// SnapshotOptions controls a page capture.
type SnapshotOptions struct {
	// Format is "pdf" (default) or "png".
	Format string
	// PageSize applies to PDF: letter (default), a4 or legal.
	PageSize string
	// Width is the viewport width in CSS pixels for PNG. Zero means 1280.
	Width int
}

// Validate checks the options. A nil receiver is valid.
func (o *SnapshotOptions) Validate() error {
	if o == nil {
		return nil
	}
	switch strings.ToLower(o.Format) {
	case "", FormatPDF, FormatPNG:
	default:
		return fmt.Errorf("%w: format %q (must be pdf or png)", ErrInvalidSnapshot, o.Format)
	}
	if o.PageSize != "" {
		if _, ok := paperSizes[strings.ToLower(o.PageSize)]; !ok {
			return fmt.Errorf("%w: page size %q (must be letter, a4, or legal)", ErrInvalidSnapshot, o.PageSize)
		}
	}
	if o.Width < 0 || o.Width > MaxWidth {
		return fmt.Errorf("%w: width %d (must be 0-%d)", ErrInvalidSnapshot, o.Width, MaxWidth)
	}
	return nil
}

// withDefaults returns a copy with empty fields filled and names lower-cased.
func (o *SnapshotOptions) withDefaults() SnapshotOptions {
	var out SnapshotOptions
	if o != nil {
		out = *o
	}
	out.Format = strings.ToLower(out.Format)
	if out.Format == "" {
		out.Format = FormatPDF
	}
	out.PageSize = strings.ToLower(out.PageSize)
	if out.PageSize == "" {
		out.PageSize = DefaultPageSize
	}
	if out.Width == 0 {
		out.Width = DefaultWidth
	}
	return out
}

// Snapshot captures sess as a PDF or PNG. Logo images are inlined so the
// browser needs no file server.
func (b *Builder) Snapshot(ctx context.Context, sess *Session, opts *SnapshotOptions) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	resolved := opts.withDefaults()

	var buf bytes.Buffer
	if err := sess.Render(ctx, &buf); err != nil {
		return nil, err
	}

	htmlContent, err := pipeline.InlineImages(buf.String(), "/logos/", b.inlineLogo)
	if err != nil {
		return nil, fmt.Errorf("%w: inlining logos: %v", ErrSnapshot, err)
	}

	return b.snapshot.Capture(ctx, htmlContent, &resolved)
}

// inlineLogo feeds pipeline.InlineImages from the asset loader.
func (b *Builder) inlineLogo(name string) ([]byte, string, error) {
	file, err := url.PathUnescape(name)
	if err != nil {
		return nil, "", err
	}
	data, err := b.loader.LoadLogo(file)
	if err != nil {
		return nil, "", err
	}
	return data, assets.LogoContentType(file), nil
}

// snapshotter turns an HTML document into PDF or PNG bytes.
type snapshotter interface {
	Capture(ctx context.Context, htmlContent string, opts *SnapshotOptions) ([]byte, error)
	Close() error
}

// rodSnapshotter captures pages with headless Chrome via go-rod.
// Rod downloads Chromium on first run if none is found.
type rodSnapshotter struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

func newRodSnapshotter(timeout time.Duration) *rodSnapshotter {
	return &rodSnapshotter{timeout: timeout}
}

// ensureBrowser lazily starts and connects to the browser.
func (r *rodSnapshotter) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	env := hints.ReadBrowserEnv(os.Getenv)
	l := launcher.New()
	if env.Bin != "" {
		l = l.Bin(env.Bin)
	}
	if env.Sandboxless() {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect(env))
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		r.kill(l)
		return fmt.Errorf("%w: %v%s", ErrBrowserConnect, err, hints.ForBrowserConnect(env))
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Capture writes htmlContent to a temp file, opens it and captures it.
func (r *rodSnapshotter) Capture(ctx context.Context, htmlContent string, opts *SnapshotOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}
	page = page.Timeout(timeout)

	if opts.Format == FormatPNG {
		if err := page.SetViewport(viewport(opts.Width)); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
		}
	}

	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrPageLoad, err, hints.ForTimeout())
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Format == FormatPNG {
		img, err := page.Screenshot(true, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		return img, nil
	}

	reader, err := page.PDF(buildPDFOptions(opts.PageSize))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrSnapshot, err)
	}
	return pdf, nil
}

// Close releases the browser and any Chrome process it left behind.
func (r *rodSnapshotter) Close() error {
	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	r.browser = nil
	r.kill(r.launcher)
	r.launcher = nil
	return err
}

// kill terminates the launched Chrome process tree.
func (r *rodSnapshotter) kill(l *launcher.Launcher) {
	if l == nil {
		return
	}
	if pid := l.PID(); pid > 0 {
		_ = process.KillTree(pid) // l.Kill below covers the leader
	}
	l.Kill()
}

// buildPDFOptions returns print settings for the named paper size.
// Backgrounds are printed so the hero and footer keep their colours.
func buildPDFOptions(pageSize string) *proto.PagePrintToPDF {
	size, ok := paperSizes[pageSize]
	if !ok {
		size = paperSizes[DefaultPageSize]
	}
	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(size[0]),
		PaperHeight:     floatPtr(size[1]),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

// viewport returns device metrics for a PNG capture of the given width.
func viewport(width int) *proto.EmulationSetDeviceMetricsOverride {
	if width <= 0 {
		width = DefaultWidth
	}
	return &proto.EmulationSetDeviceMetricsOverride{
		Width:             width,
		Height:            defaultHeight,
		DeviceScaleFactor: 1,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
