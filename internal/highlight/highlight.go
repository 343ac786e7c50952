// Package highlight turns raw file lines into styled terminal spans. The
// browser core depends only on the Highlighter interface so tests can swap
// in a deterministic plain implementation.
package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// Span is a run of text sharing one terminal style.
type Span struct {
	Text  string
	Style tcell.Style
}

// Line is one rendered preview line.
type Line []Span

// Highlighter renders file lines for display. The file name selects the
// language; implementations must return exactly one Line per input line.
type Highlighter interface {
	Highlight(name string, lines []string) []Line
}

// Plain wraps each line in a single default-styled span.
func Plain(lines []string) []Line {
	out := make([]Line, len(lines))
	for i, l := range lines {
		if l == "" {
			out[i] = Line{}
			continue
		}
		out[i] = Line{{Text: l, Style: tcell.StyleDefault}}
	}
	return out
}

type chromaHighlighter struct {
	style *chroma.Style
}

// New returns a chroma-backed highlighter using the named chroma style.
// An unknown style name falls back to chroma's default.
func New(styleName string) Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &chromaHighlighter{style: style}
}

func (h *chromaHighlighter) Highlight(name string, lines []string) []Line {
	lexer := lexers.Match(filepath.Base(name))
	if lexer == nil {
		return Plain(lines)
	}

	iterator, err := lexer.Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return Plain(lines)
	}

	out := make([]Line, 1, len(lines)+1)
	for _, token := range iterator.Tokens() {
		style := h.styleFor(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, Line{})
			}
			if part == "" {
				continue
			}
			out[len(out)-1] = append(out[len(out)-1], Span{Text: part, Style: style})
		}
	}

	// The tokenizer may add or swallow a trailing newline; the contract is
	// one output line per input line.
	for len(out) < len(lines) {
		out = append(out, Line{})
	}
	return out[:len(lines)]
}

func (h *chromaHighlighter) styleFor(tokenType chroma.TokenType) tcell.Style {
	entry := h.style.Get(tokenType)
	style := tcell.StyleDefault

	if entry.Colour.IsSet() {
		style = style.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

// LineText flattens a rendered line back to its raw text.
func LineText(line Line) string {
	var sb strings.Builder
	for _, span := range line {
		sb.WriteString(span.Text)
	}
	return sb.String()
}
