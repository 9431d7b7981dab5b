package site

import (
	"fmt"
	"os"
	"strings"

	"github.com/mad-scientist-star/barones-site/internal/assets"
	"github.com/mad-scientist-star/barones-site/internal/fileutil"
	"github.com/mad-scientist-star/barones-site/internal/hints"
)

// stylesheetSource provides the pieces of the page stylesheet.
type stylesheetSource interface {
	LoadStyle(name string) (string, error)
}

// highlightCSS provides the stylesheet for highlighted commands.
type highlightCSS interface {
	CSS() (string, error)
}

// buildStylesheet concatenates the base style, the accent override and the
// highlighting rules. Order matters: later rules override earlier ones.
func buildStylesheet(src stylesheetSource, style, accent string, hl highlightCSS) (string, error) {
	base, err := resolveStyle(src, style)
	if err != nil {
		return "", err
	}

	accentCSS, err := buildAccentCSS(accent)
	if err != nil {
		return "", err
	}

	codeCSS, err := hl.CSS()
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	buf.WriteString(base)
	buf.WriteString(accentCSS)
	buf.WriteString("\n/* Install commands */\n")
	buf.WriteString(codeCSS)
	return buf.String(), nil
}

// resolveStyle loads a style by name or reads it from a file path.
func resolveStyle(src stylesheetSource, style string) (string, error) {
	if style == "" {
		style = assets.DefaultStyleName
	}

	if fileutil.IsFilePath(style) {
		content, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %q: %v", ErrStyleNotFound, style, err)
		}
		return string(content), nil
	}

	css, err := src.LoadStyle(style)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v%s", ErrStyleNotFound, style, err, hints.ForStyleNotFound(assets.EmbeddedStyles()))
	}
	return css, nil
}

// buildAccentCSS overrides the accent custom property. Returns "" when
// accent is empty.
func buildAccentCSS(accent string) (string, error) {
	if accent == "" {
		return "", nil
	}
	if !accentPattern.MatchString(accent) {
		return "", fmt.Errorf("%w: %q (want #rgb or #rrggbb)", ErrInvalidAccent, accent)
	}

	return fmt.Sprintf(`
/* Accent */
:root {
  --color-accent: %s;
}
`, accent), nil
}
