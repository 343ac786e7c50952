package render

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
	"github.com/kk-code-lab/gridls/internal/highlight"
	statepkg "github.com/kk-code-lab/gridls/internal/state"
	"github.com/mattn/go-runewidth"
)

// PreviewSource supplies the rendered preview window for a file. It is the
// read-side of the preview manager; the renderer never touches the
// filesystem itself.
type PreviewSource interface {
	Window(path string, height int) (int, []highlight.Line)
}

// Renderer draws the entire UI onto a tcell screen from AppState.
type Renderer struct {
	screen   tcell.Screen
	theme    Theme
	bindings config.Keybindings
}

// NewRenderer builds a renderer with a resolved theme. The keybindings are
// only used to label the help overlay.
func NewRenderer(screen tcell.Screen, colors config.Colors, bindings config.Keybindings) *Renderer {
	return &Renderer{
		screen:   screen,
		theme:    NewTheme(colors),
		bindings: bindings,
	}
}

// Render draws one full frame.
func (r *Renderer) Render(s *statepkg.AppState, preview PreviewSource) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if s.HelpVisible {
		r.drawHelp(w, h)
		r.screen.Show()
		return
	}

	r.drawPathBar(s, w)
	r.drawGrid(s, w, h)

	previewName := ""
	if ph := s.PreviewContentHeight(); ph > 0 {
		if sel := s.SelectedEntry(); sel != nil && !sel.IsDir {
			r.drawPreview(s, preview, sel.FullPath, w, h, ph)
			previewName = sel.Name
		} else {
			r.drawPreviewFrame(w, h, ph)
		}
	}

	r.drawStatusLine(s, previewName, w, h)
	r.screen.Show()
}

// drawPathBar renders the current directory on the top row.
func (r *Renderer) drawPathBar(s *statepkg.AppState, w int) {
	text := " " + s.CurrentDir + " "
	x := r.drawText(0, 0, w, text, r.theme.PathBar)
	for ; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, tcell.StyleDefault)
	}
}

// drawGrid renders the entry grid in row-major order starting at row 1.
func (r *Renderer) drawGrid(s *statepkg.AppState, w, h int) {
	if len(s.Entries) == 0 {
		r.drawText(0, 1, w, "  (empty directory)", r.theme.Empty)
		return
	}

	maxRows := s.GridRowsAvailable()
	rows := s.Rows
	if rows > maxRows {
		rows = maxRows
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < s.Cols; col++ {
			idx := row*s.Cols + col
			if idx >= len(s.Entries) {
				break
			}
			r.drawCell(s, idx, col*statepkg.CellWidth, 1+row)
		}
	}
}

func (r *Renderer) drawCell(s *statepkg.AppState, idx, x, y int) {
	entry := s.Entries[idx]
	selected := idx == s.Selected

	style := r.theme.File
	if selected {
		style = r.theme.Selected
	} else if entry.IsDir {
		style = r.theme.Directory
	}

	prefix := "  "
	if selected {
		prefix = "> "
	}
	x = r.drawText(x, y, statepkg.CellWidth, prefix, style)

	name := fitCell(entry.DisplayName(s.ShowDirSlash), statepkg.NameWidth)

	// Highlight the matched prefix while a fuzzy query is active. The split
	// point is counted in runes; the query's byte length can differ from the
	// name's prefix after case folding.
	matched := 0
	if s.FuzzyActive && s.FuzzyQuery != "" &&
		strings.HasPrefix(strings.ToLower(entry.Name), strings.ToLower(s.FuzzyQuery)) {
		matched = runePrefixLen(name, utf8.RuneCountInString(s.FuzzyQuery))
	}

	if matched > 0 {
		head := name[:matched]
		x = r.drawText(x, y, statepkg.NameWidth, head, r.theme.FuzzyMatch)
		r.drawText(x, y, statepkg.NameWidth-runewidth.StringWidth(head), name[matched:], style)
	} else {
		r.drawText(x, y, statepkg.NameWidth, name, style)
	}
}

// runePrefixLen returns the byte length of the first n runes of s, or
// len(s) when s has fewer runes.
func runePrefixLen(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// drawStatusLine renders the bottom row: the fuzzy prompt while finding,
// otherwise the last inline error, otherwise the previewed file name.
func (r *Renderer) drawStatusLine(s *statepkg.AppState, previewName string, w, h int) {
	y := h - 1
	switch {
	case s.FuzzyActive:
		r.drawText(0, y, w, "Find: "+s.FuzzyQuery+"_", r.theme.FuzzyBar)
	case s.LastError != nil:
		r.drawText(0, y, w, "error: "+s.LastError.Error(), r.theme.Error)
	case previewName != "":
		r.drawText(0, y, w, previewName, r.theme.Footer)
	}
}

// drawText writes text at (x, y) without exceeding maxWidth display cells,
// returning the x position after the last cell written.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	remaining := maxWidth
	for _, ch := range text {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			continue
		}
		if chWidth > remaining {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += chWidth
		remaining -= chWidth
	}
	return x
}

// fitCell truncates name to the fixed cell name width, marking truncation
// with a '~' the way the grid has always done.
func fitCell(name string, width int) string {
	if runewidth.StringWidth(name) <= width {
		return name
	}
	return runewidth.Truncate(name, width-1, "") + "~"
}
