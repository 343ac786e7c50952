package render

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/gridls/internal/config"
)

type helpEntry struct {
	keys string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func buildHelpLines(kb config.Keybindings) []string {
	sections := []helpSection{
		{
			title: "Navigation",
			entries: []helpEntry{
				{keys: keyList(kb.MoveUp, kb.MoveDown), desc: "Move up / down"},
				{keys: keyList(kb.MoveLeft, kb.MoveRight), desc: "Move left / right"},
				{keys: keyList(kb.Enter), desc: "Enter directory"},
				{keys: keyList(kb.Back), desc: "Go back"},
				{keys: keyList(kb.Home), desc: "Go to home directory"},
				{keys: keyList(kb.FuzzyFind), desc: "Find entry by prefix"},
			},
		},
		{
			title: "Preview",
			entries: []helpEntry{
				{keys: keyList(kb.TogglePreview), desc: "Toggle preview pane"},
				{keys: keyList(kb.ScrollPreviewUp, kb.ScrollPreviewDown), desc: "Scroll preview"},
				{keys: keyList(kb.ScrollPreviewFastUp, kb.ScrollPreviewFastDown), desc: "Scroll preview by a page"},
				{keys: keyList(kb.IncreasePreviewHeight, kb.DecreasePreviewHeight), desc: "Resize preview pane"},
			},
		},
		{
			title: "Actions",
			entries: []helpEntry{
				{keys: keyList(kb.Select), desc: "Edit file / cd into directory on exit"},
				{keys: keyList(kb.ToggleHidden), desc: "Toggle hidden files"},
				{keys: keyList(kb.ToggleHelp), desc: "Toggle this help"},
				{keys: keyList(kb.Quit), desc: "Quit"},
			},
		},
	}

	lines := make([]string, 0, 24)
	for i, section := range sections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-16s %s", entry.keys, entry.desc))
		}
	}
	return lines
}

// keyList joins the configured specs for one or more actions into a
// human-readable key column.
func keyList(groups ...[]string) string {
	parts := make([]string, 0, 4)
	for _, group := range groups {
		parts = append(parts, group...)
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) drawHelp(w, h int) {
	title := " Help "
	start := 0
	if w > len(title) {
		start = (w - len(title)) / 2
	}
	r.drawText(start, 0, w-start, title, r.theme.PathBar)

	row := 2
	for _, line := range buildHelpLines(r.bindings) {
		if row >= h-1 {
			break
		}
		r.drawText(2, row, w-4, line, r.theme.File)
		row++
	}

	r.drawText(0, h-1, w, "? close help", r.theme.Footer)
}
