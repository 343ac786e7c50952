package render

import (
	"fmt"

	statepkg "github.com/kk-code-lab/gridls/internal/state"
	"github.com/mattn/go-runewidth"
)

// drawPreviewFrame draws the horizontal rule separating the grid from the
// preview area. The content rows below it are left blank.
func (r *Renderer) drawPreviewFrame(w, h, contentHeight int) int {
	sepRow := h - 2 - contentHeight
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, sepRow, '─', nil, r.theme.PreviewBorder)
	}
	return sepRow
}

// drawPreview renders the preview window for the selected file beneath the
// separator rule.
func (r *Renderer) drawPreview(s *statepkg.AppState, preview PreviewSource, path string, w, h, contentHeight int) {
	sepRow := r.drawPreviewFrame(w, h, contentHeight)
	if preview == nil {
		return
	}

	scroll, lines := preview.Window(path, contentHeight)
	if scroll > 0 {
		label := fmt.Sprintf("─ %d ", scroll)
		r.drawText(w-runewidth.StringWidth(label)-1, sepRow, w, label, r.theme.PreviewBorder)
	}

	for i, line := range lines {
		if i >= contentHeight {
			break
		}
		x := 1
		for _, span := range line {
			x = r.drawText(x, sepRow+1+i, w-x, span.Text, span.Style)
			if x >= w {
				break
			}
		}
	}
}
