package state

import "github.com/kk-code-lab/gridls/internal/config"

// StateReducer applies resolved actions to the AppState. Select and Quit
// never reach the reducer: they involve process-level work (child editor,
// hand-off file) owned by the Controller.
type StateReducer struct {
	Preview    *PreviewManager
	scrollStep int
}

// NewStateReducer builds a reducer around the preview manager. scrollStep
// is the line count for the normal preview scroll actions.
func NewStateReducer(preview *PreviewManager, scrollStep int) *StateReducer {
	if scrollStep < 1 {
		scrollStep = 1
	}
	return &StateReducer{Preview: preview, scrollStep: scrollStep}
}

// Reduce mutates state according to action. Returned errors are non-fatal
// navigation failures; the caller surfaces them inline and keeps running.
// It reports whether the preview ratio changed, so the caller can persist it.
func (r *StateReducer) Reduce(s *AppState, action Action) (ratioChanged bool, err error) {
	switch action {
	case ActionMoveUp:
		MoveSelection(s, -1, 0)
	case ActionMoveDown:
		MoveSelection(s, 1, 0)
	case ActionMoveLeft:
		MoveSelection(s, 0, -1)
	case ActionMoveRight:
		MoveSelection(s, 0, 1)

	case ActionEnter:
		return false, EnterDirectory(s)
	case ActionBack:
		return false, GoBack(s)
	case ActionHome:
		return false, GoHome(s)
	case ActionToggleHidden:
		return false, ToggleHidden(s)

	case ActionTogglePreview:
		s.PreviewVisible = !s.PreviewVisible
		s.UpdateLayout()
	case ActionToggleHelp:
		s.HelpVisible = !s.HelpVisible

	case ActionScrollPreviewUp:
		r.scrollPreview(s, -r.scrollStep)
	case ActionScrollPreviewDown:
		r.scrollPreview(s, r.scrollStep)
	case ActionScrollPreviewFastUp:
		r.scrollPreview(s, -s.PreviewContentHeight())
	case ActionScrollPreviewFastDown:
		r.scrollPreview(s, s.PreviewContentHeight())

	case ActionIncreasePreviewHeight:
		return r.adjustRatio(s, 0.1), nil
	case ActionDecreasePreviewHeight:
		return r.adjustRatio(s, -0.1), nil

	case ActionStartFuzzy:
		s.FuzzyActive = true
		s.FuzzyQuery = ""
	}
	return false, nil
}

func (r *StateReducer) scrollPreview(s *AppState, delta int) {
	if !s.PreviewVisible || delta == 0 {
		return
	}
	sel := s.SelectedEntry()
	if sel == nil || sel.IsDir {
		return
	}
	r.Preview.ScrollBy(sel.FullPath, delta)
}

func (r *StateReducer) adjustRatio(s *AppState, delta float64) bool {
	if !s.PreviewVisible {
		return false
	}
	next := config.ClampPreviewRatio(s.PreviewRatio + delta)
	if next == s.PreviewRatio {
		return false
	}
	s.PreviewRatio = next
	s.UpdateLayout()
	return true
}
