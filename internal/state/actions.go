package state

// Action is a logical, keybinding-independent command produced by resolving
// a raw key event. The set is closed; unknown keys resolve to ActionNone.
type Action int

const (
	ActionNone Action = iota
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionEnter
	ActionBack
	ActionHome
	ActionSelect
	ActionToggleHidden
	ActionToggleHelp
	ActionTogglePreview
	ActionScrollPreviewUp
	ActionScrollPreviewDown
	ActionScrollPreviewFastUp
	ActionScrollPreviewFastDown
	ActionIncreasePreviewHeight
	ActionDecreasePreviewHeight
	ActionStartFuzzy
	ActionQuit
)

var actionNames = map[Action]string{
	ActionNone:                  "none",
	ActionMoveUp:                "move_up",
	ActionMoveDown:              "move_down",
	ActionMoveLeft:              "move_left",
	ActionMoveRight:             "move_right",
	ActionEnter:                 "enter",
	ActionBack:                  "back",
	ActionHome:                  "home",
	ActionSelect:                "select",
	ActionToggleHidden:          "toggle_hidden",
	ActionToggleHelp:            "toggle_help",
	ActionTogglePreview:         "toggle_preview",
	ActionScrollPreviewUp:       "scroll_preview_up",
	ActionScrollPreviewDown:     "scroll_preview_down",
	ActionScrollPreviewFastUp:   "scroll_preview_fast_up",
	ActionScrollPreviewFastDown: "scroll_preview_fast_down",
	ActionIncreasePreviewHeight: "increase_preview_height",
	ActionDecreasePreviewHeight: "decrease_preview_height",
	ActionStartFuzzy:            "fuzzy_find",
	ActionQuit:                  "quit",
}

// String returns the config-file name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
