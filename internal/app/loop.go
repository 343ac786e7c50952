package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
	"github.com/kk-code-lab/gridls/internal/logger"
	statepkg "github.com/kk-code-lab/gridls/internal/state"
)

// Run drives the blocking render/poll/reduce loop until the session ends.
// Everything runs on the calling goroutine; PollEvent is the only wait
// point. A non-nil error means the hand-off contract could not be honored
// and the process must exit non-zero.
func (app *Application) Run() error {
	for !app.shouldQuit {
		app.renderer.Render(app.state, app.preview)

		ev := app.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			w, h := ev.Size()
			app.state.ScreenWidth = w
			app.state.ScreenHeight = h
			app.state.UpdateLayout()
			app.screen.Sync()
		case *tcell.EventKey:
			if err := app.handleKey(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

func (app *Application) handleKey(ev *tcell.EventKey) error {
	if app.state.FuzzyActive {
		return app.handleFuzzyKey(ev)
	}

	action := app.resolver.Resolve(ev)

	// The help overlay swallows everything except closing it or quitting.
	if app.state.HelpVisible && action != statepkg.ActionToggleHelp && action != statepkg.ActionQuit {
		return nil
	}

	return app.dispatch(action)
}

// handleFuzzyKey implements the modal find: runes extend the query,
// Backspace edits it, Esc cancels, Enter selects and leaves the mode.
// Movement keys keep working.
func (app *Application) handleFuzzyKey(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		app.state.FuzzyActive = false
		app.state.FuzzyQuery = ""
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if q := app.state.FuzzyQuery; q != "" {
			runes := []rune(q)
			app.state.FuzzyQuery = string(runes[:len(runes)-1])
			statepkg.ApplyFuzzyQuery(app.state)
		}
		return nil
	case tcell.KeyEnter:
		app.state.FuzzyActive = false
		app.state.FuzzyQuery = ""
		return app.handleSelect()
	case tcell.KeyUp, tcell.KeyDown, tcell.KeyLeft, tcell.KeyRight:
		return app.dispatch(app.resolver.Resolve(ev))
	case tcell.KeyRune:
		app.state.FuzzyQuery += string(ev.Rune())
		statepkg.ApplyFuzzyQuery(app.state)
		return nil
	default:
		return nil
	}
}

// dispatch routes an action either to the app itself (session ending,
// editor launch) or through the reducer.
func (app *Application) dispatch(action statepkg.Action) error {
	app.state.LastError = nil

	switch action {
	case statepkg.ActionNone:
		return nil
	case statepkg.ActionQuit:
		app.shouldQuit = true
		return nil
	case statepkg.ActionSelect:
		return app.handleSelect()
	}

	ratioChanged, err := app.reducer.Reduce(app.state, action)
	if err != nil {
		app.state.LastError = err
		logger.Warn("%v", err)
	}
	if ratioChanged {
		if err := config.SavePreviewRatio(app.configDir, app.state.PreviewRatio); err != nil {
			logger.Warn("cannot persist preview ratio: %v", err)
		}
	}
	return nil
}

// handleSelect implements the Select action: directories end the session
// through the hand-off file, files open in the external editor.
func (app *Application) handleSelect() error {
	entry := app.state.SelectedEntry()
	if entry == nil {
		return nil
	}

	if entry.IsDir {
		if err := WriteHandoff(app.handoffPath, entry.FullPath); err != nil {
			return err
		}
		app.shouldQuit = true
		return nil
	}

	if err := app.editor.Open(entry.FullPath); err != nil {
		app.state.LastError = err
		return nil
	}

	if app.cfg.Settings.ExitAfterEdit {
		if err := WriteHandoff(app.handoffPath, app.state.CurrentDir); err != nil {
			return err
		}
		app.shouldQuit = true
		return nil
	}

	// The editor may have renamed or created files under us.
	if err := statepkg.RefreshDirectory(app.state); err != nil {
		app.state.LastError = err
	}
	return nil
}
