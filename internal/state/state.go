package state

import (
	"github.com/kk-code-lab/gridls/internal/config"
	fsutil "github.com/kk-code-lab/gridls/internal/fs"
)

// FileEntry mirrors fs.Entry so UI code can rely on a stable type.
type FileEntry = fsutil.Entry

// dirFrame is one back-stack record: where we were and what was selected.
type dirFrame struct {
	dir      string
	selected int
}

// AppState is the single source of truth for the browsing session.
type AppState struct {
	// Navigation & filesystem
	CurrentDir string
	Entries    []FileEntry
	Selected   int
	ShowHidden bool
	backStack  []dirFrame

	// Grid layout
	Cols int
	Rows int

	// Preview
	PreviewVisible bool
	PreviewRatio   float64

	// Modes
	HelpVisible bool
	FuzzyActive bool
	FuzzyQuery  string

	// Display
	ShowDirSlash bool
	ScreenWidth  int
	ScreenHeight int

	// Last recovered error, shown inline on the status line.
	LastError error
}

// NewAppState returns a fresh state: preview closed, default split ratio.
func NewAppState() *AppState {
	return &AppState{
		PreviewRatio: config.DefaultPreviewRatio,
	}
}

// SelectedEntry returns the currently selected entry, or nil when the
// directory is empty.
func (s *AppState) SelectedEntry() *FileEntry {
	if s.Selected < 0 || s.Selected >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.Selected]
}

// BackStackDepth reports how many directories GoBack can unwind.
func (s *AppState) BackStackDepth() int {
	return len(s.backStack)
}

// clampSelection forces the selection invariant 0 <= Selected < len(Entries)
// (0 when the directory is empty).
func (s *AppState) clampSelection() {
	if len(s.Entries) == 0 {
		s.Selected = 0
		return
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
	if s.Selected >= len(s.Entries) {
		s.Selected = len(s.Entries) - 1
	}
}

// PreviewContentHeight returns the number of preview text rows the current
// ratio yields, or 0 when the preview is hidden or the screen is too small.
// Screen geometry: header row, grid rows, separator rule, preview rows,
// status line.
func (s *AppState) PreviewContentHeight() int {
	if !s.PreviewVisible || s.ScreenHeight < 6 {
		return 0
	}
	usable := s.ScreenHeight - 3
	h := int(float64(usable)*s.PreviewRatio + 0.5)
	if h < 1 {
		h = 1
	}
	if h > usable-1 {
		h = usable - 1
	}
	return h
}

// GridRowsAvailable returns how many terminal rows the entry grid may use.
func (s *AppState) GridRowsAvailable() int {
	rows := s.ScreenHeight - 2
	if pv := s.PreviewContentHeight(); pv > 0 {
		rows -= pv + 1
	}
	if rows < 0 {
		rows = 0
	}
	return rows
}
