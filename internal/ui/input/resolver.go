// Package input resolves raw terminal key events into logical actions using
// the externally configured keybindings.
package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/gridls/internal/config"
	statepkg "github.com/kk-code-lab/gridls/internal/state"
)

// keyChord is the normalized identity of one key press.
type keyChord struct {
	key tcell.Key
	r   rune
}

var namedKeys = map[string]keyChord{
	"up":        {key: tcell.KeyUp},
	"down":      {key: tcell.KeyDown},
	"left":      {key: tcell.KeyLeft},
	"right":     {key: tcell.KeyRight},
	"enter":     {key: tcell.KeyEnter},
	"backspace": {key: tcell.KeyBackspace},
	"esc":       {key: tcell.KeyEscape},
	"escape":    {key: tcell.KeyEscape},
	"tab":       {key: tcell.KeyTab},
	"pgup":      {key: tcell.KeyPgUp},
	"pgdn":      {key: tcell.KeyPgDn},
	"home":      {key: tcell.KeyHome},
	"end":       {key: tcell.KeyEnd},
	"delete":    {key: tcell.KeyDelete},
	"space":     {key: tcell.KeyRune, r: ' '},
}

// Resolver maps key events to actions. Bindings are immutable once built.
type Resolver struct {
	bindings map[keyChord]statepkg.Action
}

// resolutionOrder fixes which action wins when a key is bound twice: the
// action listed first here keeps the key.
var resolutionOrder = []statepkg.Action{
	statepkg.ActionQuit,
	statepkg.ActionToggleHelp,
	statepkg.ActionMoveUp,
	statepkg.ActionMoveDown,
	statepkg.ActionMoveLeft,
	statepkg.ActionMoveRight,
	statepkg.ActionEnter,
	statepkg.ActionBack,
	statepkg.ActionHome,
	statepkg.ActionSelect,
	statepkg.ActionToggleHidden,
	statepkg.ActionTogglePreview,
	statepkg.ActionScrollPreviewUp,
	statepkg.ActionScrollPreviewDown,
	statepkg.ActionScrollPreviewFastUp,
	statepkg.ActionScrollPreviewFastDown,
	statepkg.ActionIncreasePreviewHeight,
	statepkg.ActionDecreasePreviewHeight,
	statepkg.ActionStartFuzzy,
}

// NewResolver builds a resolver from configured bindings. Unparsable specs
// and duplicate keys produce warnings (reported once by the caller) but are
// never fatal: for duplicates, the first binding wins.
func NewResolver(kb config.Keybindings) (*Resolver, []string) {
	specs := map[statepkg.Action][]string{
		statepkg.ActionQuit:                  kb.Quit,
		statepkg.ActionToggleHelp:            kb.ToggleHelp,
		statepkg.ActionMoveUp:                kb.MoveUp,
		statepkg.ActionMoveDown:              kb.MoveDown,
		statepkg.ActionMoveLeft:              kb.MoveLeft,
		statepkg.ActionMoveRight:             kb.MoveRight,
		statepkg.ActionEnter:                 kb.Enter,
		statepkg.ActionBack:                  kb.Back,
		statepkg.ActionHome:                  kb.Home,
		statepkg.ActionSelect:                kb.Select,
		statepkg.ActionToggleHidden:          kb.ToggleHidden,
		statepkg.ActionTogglePreview:         kb.TogglePreview,
		statepkg.ActionScrollPreviewUp:       kb.ScrollPreviewUp,
		statepkg.ActionScrollPreviewDown:     kb.ScrollPreviewDown,
		statepkg.ActionScrollPreviewFastUp:   kb.ScrollPreviewFastUp,
		statepkg.ActionScrollPreviewFastDown: kb.ScrollPreviewFastDown,
		statepkg.ActionIncreasePreviewHeight: kb.IncreasePreviewHeight,
		statepkg.ActionDecreasePreviewHeight: kb.DecreasePreviewHeight,
		statepkg.ActionStartFuzzy:            kb.FuzzyFind,
	}

	r := &Resolver{bindings: make(map[keyChord]statepkg.Action)}
	var warnings []string

	for _, action := range resolutionOrder {
		for _, spec := range specs[action] {
			chord, err := parseKeySpec(spec)
			if err != nil {
				warnings = append(warnings, fmt.Sprintf("keybinding %s: %v", action, err))
				continue
			}
			if prev, ok := r.bindings[chord]; ok {
				if prev != action {
					warnings = append(warnings, fmt.Sprintf(
						"key %q bound to both %s and %s; keeping %s", spec, prev, action, prev))
				}
				continue
			}
			r.bindings[chord] = action
		}
	}

	return r, warnings
}

// Resolve maps one key event to its action; unbound keys are ActionNone.
// Ctrl+C always quits regardless of configuration.
func (r *Resolver) Resolve(ev *tcell.EventKey) statepkg.Action {
	if ev.Key() == tcell.KeyCtrlC {
		return statepkg.ActionQuit
	}
	if action, ok := r.bindings[chordFromEvent(ev)]; ok {
		return action
	}
	return statepkg.ActionNone
}

func chordFromEvent(ev *tcell.EventKey) keyChord {
	key := ev.Key()
	switch key {
	case tcell.KeyRune:
		return keyChord{key: tcell.KeyRune, r: ev.Rune()}
	case tcell.KeyBackspace2:
		// Terminals disagree on BS vs DEL for the backspace key.
		return keyChord{key: tcell.KeyBackspace}
	default:
		return keyChord{key: key}
	}
}

// parseKeySpec understands named keys ("enter", "space", "up"), single
// characters ("w", "?", "+"), and "shift+x" as an alias for the uppercase
// character.
func parseKeySpec(spec string) (keyChord, error) {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return keyChord{}, fmt.Errorf("empty key spec")
	}

	lower := strings.ToLower(trimmed)
	if chord, ok := namedKeys[lower]; ok {
		return chord, nil
	}

	if rest, ok := strings.CutPrefix(lower, "shift+"); ok {
		r, size := utf8.DecodeRuneInString(rest)
		if size == 0 || size != len(rest) {
			return keyChord{}, fmt.Errorf("invalid key spec %q", spec)
		}
		return keyChord{key: tcell.KeyRune, r: unicode.ToUpper(r)}, nil
	}

	r, size := utf8.DecodeRuneInString(trimmed)
	if size != len(trimmed) {
		return keyChord{}, fmt.Errorf("unknown key spec %q", spec)
	}
	return keyChord{key: tcell.KeyRune, r: r}, nil
}
