package pipeline

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrHighlight indicates an install command could not be tokenised or formatted.
var ErrHighlight = errors.New("command highlighting failed")

// DefaultHighlightStyle is the Chroma style used when none is configured.
const DefaultHighlightStyle = "github"

// CommandHighlighter renders shell commands as class-annotated spans.
// The visible text is the command, unchanged.
type CommandHighlighter struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewCommandHighlighter creates a highlighter for shell commands. An unknown
// style name falls back to Chroma's default style.
func NewCommandHighlighter(styleName string) *CommandHighlighter {
	lexer := lexers.Get("bash")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if styleName == "" {
		styleName = DefaultHighlightStyle
	}

	return &CommandHighlighter{
		lexer: chroma.Coalesce(lexer),
		style: styles.Get(styleName),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// Highlight returns escaped HTML for command.
func (h *CommandHighlighter) Highlight(command string) (string, error) {
	iterator, err := h.lexer.Tokenise(nil, command)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}

// CSS returns the stylesheet for the classes Highlight emits. Code fences
// in Markdown copy use the same classes.
func (h *CommandHighlighter) CSS() (string, error) {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHighlight, err)
	}
	return buf.String(), nil
}
