package app

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
	"github.com/kk-code-lab/gridls/internal/highlight"
	"github.com/kk-code-lab/gridls/internal/logger"
	statepkg "github.com/kk-code-lab/gridls/internal/state"
	inputui "github.com/kk-code-lab/gridls/internal/ui/input"
	renderui "github.com/kk-code-lab/gridls/internal/ui/render"
)

// Application owns the terminal screen and the browsing session. It runs a
// single blocking event loop; everything happens on the calling goroutine.
type Application struct {
	screen   tcell.Screen
	cfg      config.Config
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	resolver *inputui.Resolver
	renderer *renderui.Renderer
	preview  *statepkg.PreviewManager
	editor   EditorLauncher

	configDir   string
	handoffPath string
	shouldQuit  bool
}

// NewApplication initializes the screen, loads configuration and the
// starting directory, and wires the session together.
func NewApplication() (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	app, err := newApplicationWithScreen(screen)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

// newApplicationWithScreen does the screen-independent setup so tests can
// drive the app on a simulation screen.
func newApplicationWithScreen(screen tcell.Screen) (*Application, error) {
	configDir, err := config.Dir()
	if err == nil {
		logger.Init(configDir)
	}

	cfg := config.Load(configDir)
	for _, warning := range cfg.Warnings {
		logger.Warn("%s", warning)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("cannot determine working directory: %w", err)
	}

	handoffPath := HandoffPath()

	// A hand-off file from a previous run must never redirect this one.
	if err := RemoveStaleHandoff(handoffPath); err != nil {
		logger.Warn("cannot remove stale hand-off file: %v", err)
	}

	state := statepkg.NewAppState()
	state.PreviewRatio = cfg.PreviewRatio
	state.ShowDirSlash = cfg.Settings.ShowDirSlash
	w, h := screen.Size()
	state.ScreenWidth = w
	state.ScreenHeight = h

	if err := statepkg.LoadDirectory(state, cwd); err != nil {
		return nil, err
	}

	preview := statepkg.NewPreviewManager(highlight.New("monokai"))
	reducer := statepkg.NewStateReducer(preview, cfg.Settings.PreviewScrollAmount)

	resolver, warnings := inputui.NewResolver(cfg.Keybindings)
	for _, warning := range warnings {
		logger.Warn("%s", warning)
	}

	return &Application{
		screen:      screen,
		cfg:         cfg,
		state:       state,
		reducer:     reducer,
		resolver:    resolver,
		renderer:    renderui.NewRenderer(screen, cfg.Colors, cfg.Keybindings),
		preview:     preview,
		editor:      newSystemEditorLauncher(screen),
		configDir:   configDir,
		handoffPath: handoffPath,
	}, nil
}

// Close releases the terminal.
func (app *Application) Close() {
	app.screen.Fini()
	logger.Close()
}
