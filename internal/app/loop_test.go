package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
	"github.com/kk-code-lab/gridls/internal/highlight"
	statepkg "github.com/kk-code-lab/gridls/internal/state"
	inputui "github.com/kk-code-lab/gridls/internal/ui/input"
)

func newLoopTestApp(t *testing.T, dir string) *Application {
	t.Helper()

	app := newTestApp(t, dir, &fakeEditor{})
	app.configDir = t.TempDir()
	app.state.PreviewVisible = true

	preview := statepkg.NewPreviewManager(highlight.New("monokai"))
	app.preview = preview
	app.reducer = statepkg.NewStateReducer(preview, 10)

	resolver, warnings := inputui.NewResolver(config.DefaultKeybindings())
	if len(warnings) > 0 {
		t.Fatalf("unexpected resolver warnings: %v", warnings)
	}
	app.resolver = resolver
	return app
}

func keyEvent(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func specialKey(key tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(key, 0, tcell.ModNone)
}

func populate(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name+"\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestQuitKeyEndsLoop(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.txt")
	app := newLoopTestApp(t, dir)

	if err := app.handleKey(keyEvent('q')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if !app.shouldQuit {
		t.Fatalf("q should quit")
	}
}

func TestMovementKeysChangeSelection(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.txt", "b.txt", "c.txt", "d.txt")
	app := newLoopTestApp(t, dir)

	// 4 entries on an 80-column screen lay out as a 2x2 grid.
	if app.state.Cols != 2 || app.state.Rows != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", app.state.Cols, app.state.Rows)
	}

	if err := app.handleKey(keyEvent('d')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.Selected != 1 {
		t.Fatalf("expected selection 1 after move right, got %d", app.state.Selected)
	}
	if err := app.handleKey(keyEvent('s')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.Selected != 3 {
		t.Fatalf("expected selection 3 after move down, got %d", app.state.Selected)
	}
}

func TestHelpOverlaySwallowsOtherKeys(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.txt", "b.txt")
	app := newLoopTestApp(t, dir)

	if err := app.handleKey(keyEvent('?')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if !app.state.HelpVisible {
		t.Fatalf("? should open help")
	}

	if err := app.handleKey(keyEvent('d')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.Selected != 0 {
		t.Fatalf("movement should be ignored while help is open")
	}

	if err := app.handleKey(keyEvent('?')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.HelpVisible {
		t.Fatalf("? should close help")
	}
}

func TestFuzzyModeQueryAndJump(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "alpha.txt", "beta.txt", "banana.txt")
	app := newLoopTestApp(t, dir)

	if err := app.handleKey(keyEvent('/')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if !app.state.FuzzyActive {
		t.Fatalf("/ should enter fuzzy mode")
	}

	// "b" matches banana.txt and beta.txt; no jump yet.
	if err := app.handleKey(keyEvent('b')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.FuzzyQuery != "b" {
		t.Fatalf("expected query %q, got %q", "b", app.state.FuzzyQuery)
	}
	if app.state.Selected != 0 {
		t.Fatalf("ambiguous query should not move selection")
	}

	// "be" is unique to beta.txt.
	if err := app.handleKey(keyEvent('e')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	sel := app.state.SelectedEntry()
	if sel == nil || sel.Name != "beta.txt" {
		t.Fatalf("unique query should jump to beta.txt, got %v", sel)
	}

	// Backspace edits, Esc leaves the mode.
	if err := app.handleKey(specialKey(tcell.KeyBackspace2)); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.FuzzyQuery != "b" {
		t.Fatalf("backspace should trim query, got %q", app.state.FuzzyQuery)
	}
	if err := app.handleKey(specialKey(tcell.KeyEscape)); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if app.state.FuzzyActive || app.state.FuzzyQuery != "" {
		t.Fatalf("esc should leave fuzzy mode and clear the query")
	}
}

func TestFuzzyModeEnterSelects(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "src"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	app := newLoopTestApp(t, dir)

	if err := app.handleKey(keyEvent('/')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if err := app.handleKey(specialKey(tcell.KeyEnter)); err != nil {
		t.Fatalf("handleKey: %v", err)
	}

	if !app.shouldQuit {
		t.Fatalf("enter in fuzzy mode should select the directory and exit")
	}
	data, err := os.ReadFile(app.handoffPath)
	if err != nil {
		t.Fatalf("hand-off file missing: %v", err)
	}
	if string(data) != filepath.Join(dir, "src") {
		t.Fatalf("unexpected hand-off target %q", string(data))
	}
}

func TestRatioAdjustmentPersists(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.txt")
	app := newLoopTestApp(t, dir)

	if err := app.handleKey(keyEvent('+')); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if math.Abs(app.state.PreviewRatio-0.6) > 1e-9 {
		t.Fatalf("expected ratio 0.6, got %v", app.state.PreviewRatio)
	}

	saved := config.Load(app.configDir)
	if math.Abs(saved.PreviewRatio-0.6) > 1e-9 {
		t.Fatalf("expected persisted ratio 0.6, got %v", saved.PreviewRatio)
	}
}

func TestCtrlCAlwaysQuits(t *testing.T) {
	dir := t.TempDir()
	populate(t, dir, "a.txt")
	app := newLoopTestApp(t, dir)
	app.state.HelpVisible = true

	if err := app.handleKey(specialKey(tcell.KeyCtrlC)); err != nil {
		t.Fatalf("handleKey: %v", err)
	}
	if !app.shouldQuit {
		t.Fatalf("ctrl+c should quit even with the help overlay open")
	}
}
